package cpu

import (
	"fmt"
	"strings"
)

// Flags is the condition flag set.
type Flags uint8

const (
	FLAG_CARRY  = Flags(1 << 0) // C
	FLAG_ZERO   = Flags(1 << 1) // Z
	FLAG_PARITY = Flags(1 << 2) // P
)

func (fl Flags) Carry() bool  { return fl&FLAG_CARRY != 0 }
func (fl Flags) Zero() bool   { return fl&FLAG_ZERO != 0 }
func (fl Flags) Parity() bool { return fl&FLAG_PARITY != 0 }

// set sets or clears the flags in mask.
func (fl *Flags) set(mask Flags, on bool) {
	if on {
		*fl |= mask
	} else {
		*fl &^= mask
	}
}

// SetCarry sets the carry flag.
func (fl *Flags) SetCarry(on bool) {
	fl.set(FLAG_CARRY, on)
}

// Result recomputes Zero and Parity from an 8-bit result.
// Parity marks a positive, non-zero result. Carry is untouched.
func (fl *Flags) Result(r byte) {
	fl.set(FLAG_ZERO, r == 0)
	fl.set(FLAG_PARITY, r != 0 && r&0x80 == 0)
}

// String renders the active flags as "C|Z|P", or "-" if none are set.
func (fl Flags) String() string {
	var names []string
	if fl.Carry() {
		names = append(names, "C")
	}
	if fl.Zero() {
		names = append(names, "Z")
	}
	if fl.Parity() {
		names = append(names, "P")
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, "|")
}

// RunState is the coarse execution phase of the processor.
type RunState int

const (
	RUN_STATE_UNINITIALIZED = RunState(0) // uninitialized
	RUN_STATE_RUNNING       = RunState(1) // running
	RUN_STATE_HALTED        = RunState(2) // halted
	RUN_STATE_NO_DATA       = RunState(3) // no data
	RUN_STATE_BAD_DATA      = RunState(4) // bad data
)

func (rs RunState) String() string {
	switch rs {
	case RUN_STATE_UNINITIALIZED:
		return "uninitialized"
	case RUN_STATE_RUNNING:
		return "running"
	case RUN_STATE_HALTED:
		return "halted"
	case RUN_STATE_NO_DATA:
		return "no data"
	case RUN_STATE_BAD_DATA:
		return "bad data"
	}
	return fmt.Sprintf("RunState(%d)", int(rs))
}

// INITIAL_PC is the program counter after reset.
const INITIAL_PC = uint8(0)

// Registers is the visible processor state.
type Registers struct {
	A       uint8    // Accumulator.
	X       uint8    // Index register.
	SP      uint8    // Stack pointer.
	PC      uint8    // Program counter.
	LastPC  uint8    // PC of the most recently fetched instruction.
	IR      uint8    // Most recently fetched opcode.
	Operand uint8    // Operand of the most recent two byte instruction.
	Flags   Flags    // Condition flags.
	State   RunState // Run state.
	Cycles  uint64   // Total cycles since reset.
}

// String returns the register state, one register per line.
func (regs Registers) String() (text string) {
	for _, reg := range []string{"A", "X", "SP", "PC", "LastPC", "IR", "Operand"} {
		var val uint8
		switch reg {
		case "A":
			val = regs.A
		case "X":
			val = regs.X
		case "SP":
			val = regs.SP
		case "PC":
			val = regs.PC
		case "LastPC":
			val = regs.LastPC
		case "IR":
			val = regs.IR
		case "Operand":
			val = regs.Operand
		}
		text += fmt.Sprintf("% 7s: %02X\n", reg, val)
	}
	text += fmt.Sprintf("% 7s: %v\n", "Flags", regs.Flags)
	text += fmt.Sprintf("% 7s: %v\n", "State", regs.State)
	text += fmt.Sprintf("% 7s: %d\n", "Cycles", regs.Cycles)

	return
}
