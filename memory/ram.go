package memory

// Ram is a mutable memory region.
type Ram struct {
	region
}

var _ Memory = (*Ram)(nil)

// NewRam creates a zero filled region of size bytes at base.
func NewRam(base uint, size uint) (ram *Ram) {
	ram = &Ram{
		region: region{base: base, data: make([]byte, size)},
	}

	return
}

// Store writes a single byte.
func (ram *Ram) Store(address uint, value byte) (err error) {
	offset, err := ram.check(address, 1)
	if err != nil {
		return
	}

	ram.data[offset] = value
	return
}

// StoreN writes all of values starting at address. Nothing is written when
// any part of the range is invalid.
func (ram *Ram) StoreN(address uint, values []byte) (err error) {
	count := uint(len(values))
	if count == 0 {
		_, err = ram.check(address, 1)
		return
	}

	offset, err := ram.check(address, count)
	if err != nil {
		return
	}

	copy(ram.data[offset:], values)
	return
}

// Clear zeros the region.
func (ram *Ram) Clear() (err error) {
	clear(ram.data)
	return
}
