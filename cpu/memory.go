package cpu

const (
	MEMORY_SIZE = 256 // Addressable bytes of memory.
)

// Memory is the LS-8 byte addressable memory.
type Memory struct {
	Data [MEMORY_SIZE]uint8
}

// Read returns the byte at address.
func (m *Memory) Read(address int) (value uint8, err error) {
	if address < 0 || address >= len(m.Data) {
		err = ErrAddressRange
		return
	}

	value = m.Data[address]
	return
}

// Write stores the low 8 bits of value at address.
func (m *Memory) Write(address int, value int) (err error) {
	if address < 0 || address >= len(m.Data) {
		err = ErrAddressRange
		return
	}

	m.Data[address] = uint8(value & 0xff)
	return
}

// Load copies a program to memory starting at address 0.
// Nothing is written if the program does not fit.
func (m *Memory) Load(program []uint8) (err error) {
	if len(program) > len(m.Data) {
		err = ErrProgramTooLarge
		return
	}

	copy(m.Data[:], program)
	return
}

// Reset zeroes all of memory.
func (m *Memory) Reset() {
	clear(m.Data[:])
}
