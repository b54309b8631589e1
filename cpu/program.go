package cpu

import (
	"iter"
)

// Opcode represents a line of assembled code with its source location and generated bytes.
type Opcode struct {
	LineNo    int      // Source line number.
	Address   int      // Memory address of the first byte.
	Words     []string // Source words.
	Bytes     []uint8  // Generated bytes.
	LinkLabel string   // Label to resolve into Bytes[LinkIndex].
	LinkIndex int
}

// Program is an assembled program listing.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the listing entry covering a memory address.
type Debug struct {
	*Opcode
	Index int // Offset of the address in Opcode.Bytes.
}

// Debug returns the listing entry for an address, or a nil Opcode if the
// address was not assembled.
func (prog *Program) Debug(address int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if address >= op.Address && address < op.Address+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  address - op.Address,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program.
func (prog *Program) Binary() (bins []uint8, err error) {
	for _, value := range prog.Bytes() {
		bins = append(bins, value)
	}

	if len(bins) > MEMORY_SIZE {
		err = ErrProgramTooLarge
		bins = nil
		return
	}

	return
}

// Bytes iterates over the assembled bytes by address.
func (prog *Program) Bytes() iter.Seq2[int, uint8] {
	return func(yield func(address int, value uint8) bool) {
		for _, op := range prog.Opcodes {
			for n, value := range op.Bytes {
				if !yield(op.Address+n, value) {
					return
				}
			}
		}
	}
}
