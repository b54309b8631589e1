package cpu

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// CodeClass is how the engine executes an opcode.
type CodeClass int

//go:generate go tool stringer -linecomment -type=CodeClass
const (
	OP_CONTROL = CodeClass(0) // control
	OP_DATA    = CodeClass(1) // data
	OP_ALU     = CodeClass(2) // alu
)

// CodeAluOp is an ALU operation type.
type CodeAluOp int

//go:generate go tool stringer -linecomment -type=CodeAluOp
const (
	ALU_OP_NONE = CodeAluOp(0) // none
	ALU_OP_ADD  = CodeAluOp(1) // add
	ALU_OP_SUB  = CodeAluOp(2) // sub
)

// Opcode byte values.
const (
	CODE_HLT = uint8(0b00000001)
	CODE_PRN = uint8(0b01000111)
	CODE_LDI = uint8(0b10000010)
	CODE_ADD = uint8(0b10100000)
	CODE_SUB = uint8(0b10100001)
)

const (
	CODE_OPERANDS_SHIFT = 6 // Operand count lives in the top two bits.
	CODE_ALU_FLAG       = uint8(0b00100000)
)

// Instruction describes one entry of the opcode table.
type Instruction struct {
	Code     uint8     // Opcode byte.
	Mnemonic string    // Assembler mnemonic.
	Operands int       // Operand bytes following the opcode.
	Class    CodeClass // Execution class.
	AluOp    CodeAluOp // ALU operation, for OP_ALU.
}

// Size returns the total instruction length in bytes.
func (ins Instruction) Size() int {
	return 1 + ins.Operands
}

// Validate checks the entry against the operand count encoded in its opcode.
func (ins Instruction) Validate() (err error) {
	if ins.Operands != int(ins.Code>>CODE_OPERANDS_SHIFT) {
		err = fmt.Errorf("%w: %v", ErrOpcodeOperands, ins)
		return
	}

	if (ins.Class == OP_ALU) != ((ins.Code & CODE_ALU_FLAG) != 0) {
		err = fmt.Errorf("%w: %v", ErrOpcodeOperands, ins)
		return
	}

	return
}

func (ins Instruction) String() string {
	return fmt.Sprintf("%s(0x%02x)", ins.Mnemonic, ins.Code)
}

var opcodeTable = map[uint8]Instruction{
	CODE_HLT: {Code: CODE_HLT, Mnemonic: "HLT", Operands: 0, Class: OP_CONTROL},
	CODE_PRN: {Code: CODE_PRN, Mnemonic: "PRN", Operands: 1, Class: OP_DATA},
	CODE_LDI: {Code: CODE_LDI, Mnemonic: "LDI", Operands: 2, Class: OP_DATA},
	CODE_ADD: {Code: CODE_ADD, Mnemonic: "ADD", Operands: 2, Class: OP_ALU, AluOp: ALU_OP_ADD},
	CODE_SUB: {Code: CODE_SUB, Mnemonic: "SUB", Operands: 2, Class: OP_ALU, AluOp: ALU_OP_SUB},
}

var mnemonicTable = func() map[string]Instruction {
	table := make(map[string]Instruction, len(opcodeTable))
	for _, ins := range opcodeTable {
		table[ins.Mnemonic] = ins
	}
	return table
}()

// Decode looks up an opcode byte in the opcode table.
func Decode(code uint8) (ins Instruction, err error) {
	ins, ok := opcodeTable[code]
	if !ok {
		err = ErrOpcodeUnknown
		return
	}

	return
}

// Lookup finds the opcode table entry for a mnemonic, ignoring case.
func Lookup(mnemonic string) (ins Instruction, ok bool) {
	ins, ok = mnemonicTable[strings.ToUpper(mnemonic)]
	return
}

// Instructions returns the opcode table in opcode order.
func Instructions() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for _, code := range slices.Sorted(maps.Keys(opcodeTable)) {
			if !yield(opcodeTable[code]) {
				return
			}
		}
	}
}
