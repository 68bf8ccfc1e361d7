package io

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Read(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("ab")}

	assert.False(tape.NoMoreData())
	assert.False(tape.NoMoreData()) // read-ahead is not consumed twice
	assert.Equal(byte('a'), tape.ReadChar())
	assert.Equal(byte('b'), tape.ReadChar())
	assert.True(tape.NoMoreData())
	assert.Equal(byte(0), tape.ReadChar())
}

func TestTape_NoInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	assert.True(tape.NoMoreData())
	tape.WriteChar('x') // no output is not an error
	assert.NoError(tape.Err)
}

func TestTape_Write(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	tape := &Tape{Output: &out}
	for _, ch := range []byte("hello") {
		tape.WriteChar(ch)
	}

	assert.NoError(tape.Err)
	assert.Equal("hello", out.String())
}

type failWriter struct{ count int }

func (fw *failWriter) Write(p []byte) (int, error) {
	fw.count++
	return 0, errors.New("broken")
}

func TestTape_WriteError(t *testing.T) {
	assert := assert.New(t)

	fw := &failWriter{}
	tape := &Tape{Output: fw}
	tape.WriteChar('a')
	tape.WriteChar('b')

	assert.Error(tape.Err)
	assert.Equal(1, fw.count)

	tape.Rewind()
	assert.NoError(tape.Err)
}

// stallReader never returns data, nor an error.
type stallReader struct{ reads int }

func (sr *stallReader) Read(p []byte) (int, error) {
	sr.reads++
	return 0, nil
}

func TestTape_StalledInput(t *testing.T) {
	assert := assert.New(t)

	sr := &stallReader{}
	tape := &Tape{Input: sr}

	assert.True(tape.NoMoreData())
	assert.Equal(byte(0), tape.ReadChar())
	assert.Equal(TAPE_EMPTY_READ_LIMIT, sr.reads)

	// Rewind retries the input.
	tape.Input = strings.NewReader("z")
	tape.Rewind()
	assert.False(tape.NoMoreData())
	assert.Equal(byte('z'), tape.ReadChar())
}

func TestBuffer(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer("12")
	assert.False(buf.NoMoreData())
	assert.Equal(byte('1'), buf.ReadChar())
	assert.Equal("2", buf.Remaining())
	assert.Equal(byte('2'), buf.ReadChar())
	assert.True(buf.NoMoreData())
	assert.Equal(byte(0), buf.ReadChar())

	buf.WriteChar('o')
	buf.WriteChar('k')
	assert.Equal("ok", buf.String())

	buf.Rewind()
	assert.Equal("", buf.String())
	assert.Equal("12", buf.Remaining())
}

func TestDiscardEmpty(t *testing.T) {
	assert := assert.New(t)

	Discard.WriteChar('x')
	assert.True(Empty.NoMoreData())
	assert.Equal(byte(0), Empty.ReadChar())
}
