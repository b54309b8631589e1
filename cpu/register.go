package cpu

const (
	REGISTER_COUNT = 8    // General purpose registers.
	REG_IM         = 5    // Interrupt mask register, by convention.
	REG_IS         = 6    // Interrupt status register, by convention.
	REG_SP         = 7    // Stack pointer register, by convention.
	SP_INIT        = 0xf4 // Stack pointer at reset.
)

// Registers is the general purpose register file.
type Registers struct {
	Data [REGISTER_COUNT]uint8
}

// Get returns the value of register index.
func (r *Registers) Get(index int) (value uint8, err error) {
	if index < 0 || index >= len(r.Data) {
		err = ErrRegisterRange
		return
	}

	value = r.Data[index]
	return
}

// Set stores the low 8 bits of value in register index.
func (r *Registers) Set(index int, value int) (err error) {
	if index < 0 || index >= len(r.Data) {
		err = ErrRegisterRange
		return
	}

	r.Data[index] = uint8(value & 0xff)
	return
}

// Reset zeroes the registers and points the stack pointer at SP_INIT.
func (r *Registers) Reset() {
	clear(r.Data[:])
	r.Data[REG_SP] = SP_INIT
}
