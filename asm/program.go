package asm

import (
	"iter"
)

// Opcode represents a line of assembled code with its source location and
// the bytes generated for it.
type Opcode struct {
	LineNo    int      // Source line number.
	Address   int      // Address of the first byte.
	Words     []string // Source words, after equate substitution.
	Bytes     []byte   // Generated bytes.
	LinkLabel string   // Label whose address is patched into the last byte.
}

// Program is an assembled program.
type Program struct {
	Opcodes []Opcode
	Label   map[string]int // Label addresses.
}

// Debug locates the source of an address.
type Debug struct {
	*Opcode
	Index int // Offset of the address into Opcode.Bytes.
}

// Debug returns the opcode that generated the byte at address. Opcode is
// nil when no source line covers the address.
func (prog *Program) Debug(address uint8) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(address) >= op.Address && int(address) < op.Address+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(address) - op.Address,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program, starting at address 0.
func (prog *Program) Binary() (bins []byte) {
	for address, code := range prog.Codes() {
		for len(bins) < int(address) {
			bins = append(bins, 0)
		}
		bins = append(bins, code)
	}

	return
}

// Codes iterates over the address and value of every generated byte.
func (prog *Program) Codes() iter.Seq2[uint8, byte] {
	return func(yield func(address uint8, code byte) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Bytes {
				if !yield(uint8(op.Address+n), code) {
					return
				}
			}
		}
	}
}
