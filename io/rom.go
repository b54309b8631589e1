package io

// Rom is a fixed program image.
type Rom struct {
	Data []uint8
}

var _ Loader = (*Rom)(nil)

// Binary returns a copy of the ROM image.
func (rc *Rom) Binary() (data []uint8, err error) {
	data = append([]uint8(nil), rc.Data...)
	return
}
