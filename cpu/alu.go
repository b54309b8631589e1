package cpu

// Alu applies op to registers dst and src, storing the result in dst.
// Results wrap modulo 256.
func Alu(op CodeAluOp, regs *Registers, dst, src int) (err error) {
	a, err := regs.Get(dst)
	if err != nil {
		return
	}

	b, err := regs.Get(src)
	if err != nil {
		return
	}

	var output int
	switch op {
	case ALU_OP_ADD:
		output = int(a) + int(b)
	case ALU_OP_SUB:
		output = int(a) - int(b)
	default:
		err = ErrAluUnsupported
		return
	}

	err = regs.Set(dst, output)
	return
}
