package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	for address := range MEMORY_SIZE {
		for _, value := range []int{0, 1, 0x7f, 0x80, 0xff} {
			assert.NoError(m.Write(address, value))
			got, err := m.Read(address)
			assert.NoError(err)
			assert.Equal(uint8(value), got)
		}
	}
}

func TestMemory_WriteMasks(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	assert.NoError(m.Write(3, 0x1ff))
	assert.Equal(uint8(0xff), m.Data[3])

	assert.NoError(m.Write(4, -3))
	assert.Equal(uint8(253), m.Data[4])
}

func TestMemory_Range(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	for _, address := range []int{-1, MEMORY_SIZE, MEMORY_SIZE + 1, 1 << 20} {
		_, err := m.Read(address)
		assert.ErrorIs(err, ErrAddressRange, address)
		assert.ErrorIs(m.Write(address, 1), ErrAddressRange, address)
	}
	assert.Equal([MEMORY_SIZE]uint8{}, m.Data)
}

func TestMemory_Load(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	assert.NoError(m.Load([]uint8{1, 2, 3}))
	assert.Equal([]uint8{1, 2, 3, 0}, m.Data[:4])

	full := make([]uint8, MEMORY_SIZE)
	for n := range full {
		full[n] = uint8(n)
	}
	assert.NoError(m.Load(full))
	assert.Equal(uint8(0xff), m.Data[0xff])
}

func TestMemory_LoadTooLarge(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	m.Data[0] = 0xaa

	big := make([]uint8, MEMORY_SIZE+1)
	for n := range big {
		big[n] = 0x55
	}
	assert.ErrorIs(m.Load(big), ErrProgramTooLarge)

	// Nothing written.
	assert.Equal(uint8(0xaa), m.Data[0])
	assert.Equal(uint8(0), m.Data[1])
}

func TestMemory_Reset(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	m.Load([]uint8{9, 9, 9})
	m.Reset()
	assert.Equal([MEMORY_SIZE]uint8{}, m.Data)
}
