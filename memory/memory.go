// Package memory provides the bounds-checked byte storage used by the
// simulated machine. Two variants share one contract: Ram, which is mutable
// for its whole lifetime, and Rom, which refuses every write.
package memory

import (
	"io"
)

// Memory is a contiguous, byte-addressable region starting at Base().
//
// Every access is validated against [Base, Base+Len); out of range
// accesses fail with an *ErrRange and never wrap or clamp.
type Memory interface {
	// Base returns the first valid address of the region.
	Base() uint
	// Len returns the number of bytes in the region.
	Len() uint
	// Fetch reads a single byte.
	Fetch(address uint) (value byte, err error)
	// FetchN reads count bytes starting at address.
	FetchN(address uint, count uint) (values []byte, err error)
	// Store writes a single byte.
	Store(address uint, value byte) (err error)
	// StoreN writes all of values starting at address.
	StoreN(address uint, values []byte) (err error)
	// Clear zeros the whole region.
	Clear() (err error)
	// Dump writes a hex and ASCII rendering of the region.
	Dump(w io.Writer) (err error)
}

// region is the storage shared by Ram and Rom.
type region struct {
	base uint
	data []byte
}

func (r *region) Base() uint {
	return r.base
}

func (r *region) Len() uint {
	return uint(len(r.data))
}

// check validates that [address, address+count) lies inside the region,
// and returns the offset of address into the backing slice.
func (r *region) check(address uint, count uint) (offset uint, err error) {
	length := uint(len(r.data))
	if address < r.base || address-r.base >= length || count > length-(address-r.base) {
		err = &ErrRange{Address: address, Count: count, Base: r.base, Len: length}
		return
	}

	offset = address - r.base
	return
}

func (r *region) Fetch(address uint) (value byte, err error) {
	offset, err := r.check(address, 1)
	if err != nil {
		return
	}

	value = r.data[offset]
	return
}

func (r *region) FetchN(address uint, count uint) (values []byte, err error) {
	if count == 0 {
		// Still validate the start address.
		_, err = r.check(address, 1)
		return
	}

	offset, err := r.check(address, count)
	if err != nil {
		return
	}

	values = make([]byte, count)
	copy(values, r.data[offset:offset+count])
	return
}

func (r *region) Dump(w io.Writer) (err error) {
	return dump(w, r.base, r.data)
}
