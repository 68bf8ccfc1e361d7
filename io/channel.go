// Package io provides the character devices used by the processor's input
// and output instructions: Tape, which adapts an io.Reader and io.Writer,
// and Buffer, which holds its input and output in memory.
package io

// CharSource is the input device interface.
type CharSource interface {
	// NoMoreData returns true when the source is exhausted.
	NoMoreData() bool
	// ReadChar consumes the next character. The result is undefined
	// when NoMoreData is true.
	ReadChar() byte
}

// CharSink is the output device interface.
type CharSink interface {
	// WriteChar writes a single character.
	WriteChar(ch byte)
}

// Discard is a CharSink that drops every character.
var Discard CharSink = discard{}

type discard struct{}

func (discard) WriteChar(ch byte) {}

// Empty is a CharSource with no data.
var Empty CharSource = empty{}

type empty struct{}

func (empty) NoMoreData() bool { return true }
func (empty) ReadChar() byte   { return 0 }
