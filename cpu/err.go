package cpu

import (
	"errors"

	"github.com/ezrec/mcsim/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrMemoryUnassigned = errors.New(f("memory unassigned"))
	ErrIllegalOpcode    = errors.New(f("illegal instruction"))
	ErrHalted           = errors.New(f("halted"))
)

// ErrOpcode annotates a fault with the opcode that raised it.
type ErrOpcode byte

func (eo ErrOpcode) Error() string {
	mnemonic := "???"
	info := _opcode_table[byte(eo)]
	if info.Size != 0 {
		mnemonic = info.Mnemonic
	}
	return f("opcode 0x%02x %v", byte(eo), mnemonic)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrFetch is a fault raised while fetching an instruction or its operand.
type ErrFetch struct {
	Pc  uint8
	Err error
}

func (err *ErrFetch) Error() string {
	return f("fetch at 0x%02x %v", err.Pc, err.Err)
}

func (err *ErrFetch) Unwrap() error {
	return err.Err
}
