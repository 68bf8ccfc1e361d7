package emulator

import (
	"errors"

	"github.com/ezrec/mcsim/translate"
)

var f = translate.From

var (
	ErrLabelUnknown = errors.New(f("label unknown"))
)

// ErrRuntime indicates the source line of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
