package memory

import (
	"errors"

	"github.com/ezrec/mcsim/translate"
)

var f = translate.From

var (
	ErrOutOfRange     = errors.New(f("address out of range"))
	ErrWriteProtected = errors.New(f("write protected"))
)

// ErrRange is the fault for an access outside of a region.
type ErrRange struct {
	Address uint // First address of the attempted access.
	Count   uint // Number of bytes requested.
	Base    uint // First valid address of the region.
	Len     uint // Size of the region.
}

func (err *ErrRange) Error() string {
	return f("%v: 0x%x (count %d) not in [0x%x, 0x%x)",
		ErrOutOfRange, err.Address, err.Count, err.Base, err.Base+err.Len)
}

func (err *ErrRange) Unwrap() error {
	return ErrOutOfRange
}

// ErrProtected is the fault for any write to a Rom.
type ErrProtected struct {
	Address uint
	Count   uint
}

func (err *ErrProtected) Error() string {
	return f("%v: 0x%x (count %d)", ErrWriteProtected, err.Address, err.Count)
}

func (err *ErrProtected) Unwrap() error {
	return ErrWriteProtected
}
