package io

import (
	"io"
)

// Tape provides sequential character I/O over a byte stream.
// It wraps an io.Reader for input and io.Writer for output.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	Err error // First error from Output, if any.

	hasInput  bool
	eof       bool
	lastInput byte
}

// TAPE_EMPTY_READ_LIMIT is the number of consecutive empty reads taken as
// the end of input.
const TAPE_EMPTY_READ_LIMIT = 100

var _ CharSource = (*Tape)(nil)
var _ CharSink = (*Tape)(nil)

// fill reads ahead one byte from the input stream, if needed.
func (tc *Tape) fill() {
	if tc.hasInput || tc.eof {
		return
	}

	if tc.Input == nil {
		tc.eof = true
		return
	}

	var one [1]byte
	for range TAPE_EMPTY_READ_LIMIT {
		n, err := tc.Input.Read(one[:])
		if n == 1 {
			tc.lastInput = one[0]
			tc.hasInput = true
			return
		}
		if err != nil {
			tc.eof = true
			return
		}
	}

	tc.eof = true
}

// NoMoreData returns true once the input stream has reached its end,
// or failed.
func (tc *Tape) NoMoreData() bool {
	tc.fill()
	return !tc.hasInput
}

// ReadChar consumes the next byte of input, or returns 0 at the end.
func (tc *Tape) ReadChar() (ch byte) {
	tc.fill()
	if !tc.hasInput {
		return
	}

	ch = tc.lastInput
	tc.hasInput = false
	return
}

// WriteChar writes a byte to the output stream. Output errors are
// latched in Err, and further output is dropped.
func (tc *Tape) WriteChar(ch byte) {
	if tc.Output == nil || tc.Err != nil {
		return
	}

	_, tc.Err = tc.Output.Write([]byte{ch})
}

// Rewind forgets any read-ahead byte and end of input state, for use
// after Input has been replaced.
func (tc *Tape) Rewind() {
	tc.hasInput = false
	tc.eof = false
	tc.Err = nil
}
