package io

import (
	"strings"
)

// Buffer is an in-memory character device. Input is consumed from the
// front of Input; output accumulates and is returned by String.
type Buffer struct {
	Input string

	readIndex int
	output    strings.Builder
}

var _ CharSource = (*Buffer)(nil)
var _ CharSink = (*Buffer)(nil)

// NewBuffer returns a buffer that will supply input.
func NewBuffer(input string) *Buffer {
	return &Buffer{Input: input}
}

func (bc *Buffer) NoMoreData() bool {
	return bc.readIndex >= len(bc.Input)
}

func (bc *Buffer) ReadChar() (ch byte) {
	if bc.NoMoreData() {
		return
	}

	ch = bc.Input[bc.readIndex]
	bc.readIndex++
	return
}

func (bc *Buffer) WriteChar(ch byte) {
	bc.output.WriteByte(ch)
}

// String returns everything written so far.
func (bc *Buffer) String() string {
	return bc.output.String()
}

// Remaining returns the unconsumed input.
func (bc *Buffer) Remaining() string {
	return bc.Input[bc.readIndex:]
}

// Rewind restarts input from the beginning and discards the output.
func (bc *Buffer) Rewind() {
	bc.readIndex = 0
	bc.output.Reset()
}
