package memory

// Rom is a write protected memory region. Reads behave as for Ram, while
// every Store, StoreN and Clear fails with ErrWriteProtected, whether or
// not the address is valid.
type Rom struct {
	region
}

var _ Memory = (*Rom)(nil)

// NewRom creates a region of size bytes at base, programmed with data.
// Bytes beyond len(data) are zero; data longer than size is a range fault.
func NewRom(base uint, size uint, data []byte) (rom *Rom, err error) {
	rom = &Rom{
		region: region{base: base, data: make([]byte, size)},
	}

	err = rom.Load(data)
	if err != nil {
		rom = nil
	}

	return
}

// Load reprograms the ROM contents from data, zero filling the remainder.
// This is the factory path; the simulated processor cannot reach it.
func (rom *Rom) Load(data []byte) (err error) {
	if uint(len(data)) > rom.Len() {
		err = &ErrRange{Address: rom.base, Count: uint(len(data)), Base: rom.base, Len: rom.Len()}
		return
	}

	clear(rom.data)
	copy(rom.data, data)
	return
}

func (rom *Rom) Store(address uint, value byte) error {
	return &ErrProtected{Address: address, Count: 1}
}

func (rom *Rom) StoreN(address uint, values []byte) error {
	return &ErrProtected{Address: address, Count: uint(len(values))}
}

func (rom *Rom) Clear() error {
	return &ErrProtected{Address: rom.base, Count: rom.Len()}
}
