package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcode_Table(t *testing.T) {
	assert := assert.New(t)

	count := 0
	last := -1
	for ins := range Instructions() {
		assert.NoError(ins.Validate(), ins.String())
		assert.Greater(int(ins.Code), last)
		last = int(ins.Code)
		count++

		found, ok := Lookup(ins.Mnemonic)
		assert.True(ok, ins.Mnemonic)
		assert.Equal(ins, found)
	}
	assert.Equal(5, count)
}

func TestOpcode_Decode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code     uint8
		mnemonic string
		operands int
		class    CodeClass
		alu      CodeAluOp
	}){
		{0b00000001, "HLT", 0, OP_CONTROL, ALU_OP_NONE},
		{0b10000010, "LDI", 2, OP_DATA, ALU_OP_NONE},
		{0b01000111, "PRN", 1, OP_DATA, ALU_OP_NONE},
		{0b10100000, "ADD", 2, OP_ALU, ALU_OP_ADD},
		{0b10100001, "SUB", 2, OP_ALU, ALU_OP_SUB},
	}

	for _, entry := range table {
		ins, err := Decode(entry.code)
		assert.NoError(err, entry.mnemonic)
		assert.Equal(entry.mnemonic, ins.Mnemonic)
		assert.Equal(entry.operands, ins.Operands, entry.mnemonic)
		assert.Equal(1+entry.operands, ins.Size(), entry.mnemonic)
		assert.Equal(entry.class, ins.Class, entry.mnemonic)
		assert.Equal(entry.alu, ins.AluOp, entry.mnemonic)
	}
}

func TestOpcode_DecodeUnknown(t *testing.T) {
	assert := assert.New(t)

	for _, code := range []uint8{0x00, 0x02, 0x46, 0xa2, 0xff} {
		_, err := Decode(code)
		assert.ErrorIs(err, ErrOpcodeUnknown, code)
		assert.NotErrorIs(err, ErrOpcodeOperands, code)
	}
}

func TestOpcode_Validate(t *testing.T) {
	assert := assert.New(t)

	bad := Instruction{Code: 0b01000001, Mnemonic: "BAD", Operands: 2, Class: OP_DATA}
	assert.ErrorIs(bad.Validate(), ErrOpcodeOperands)

	alu := Instruction{Code: 0b10000011, Mnemonic: "MUL", Operands: 2, Class: OP_ALU}
	assert.ErrorIs(alu.Validate(), ErrOpcodeOperands)
}

func TestOpcode_Lookup(t *testing.T) {
	assert := assert.New(t)

	ins, ok := Lookup("ldi")
	assert.True(ok)
	assert.Equal(CODE_LDI, ins.Code)

	_, ok = Lookup("PUSH")
	assert.False(ok)
}

func TestOpcode_Strings(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("alu", OP_ALU.String())
	assert.Equal("sub", ALU_OP_SUB.String())
	assert.Equal("CodeAluOp(9)", CodeAluOp(9).String())
	assert.Equal("halted", STATE_HALTED.String())
	assert.Equal("LDI(0x82)", opcodeTable[CODE_LDI].String())
}
