// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator is a debugger shell around a machine: it assembles
// source into memory, maps the program counter back to source lines,
// stops at breakpoints and traces execution.
package emulator

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/mcsim/asm"
	"github.com/ezrec/mcsim/cpu"
	"github.com/ezrec/mcsim/internal"
	mcio "github.com/ezrec/mcsim/io"
	"github.com/ezrec/mcsim/machine"
	"github.com/ezrec/mcsim/memory"
)

var _emulator_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%v", machine.MEMORY_SIZE),
}

// Emulator state. Machine + program listing + tape.
type Emulator struct {
	Verbose          bool         // If set, enables verbose logging.
	*machine.Machine              // Reference to the machine simulation.
	Program          *asm.Program // Reference to the currently loaded program listing.

	Tape   mcio.Tape // Tape character device, used for both input and output.
	Tracer Tracer    // Trace observer; enabled by setting Trace.

	Breakpoint map[uint8]bool // Addresses that stop Continue.
}

// NewEmulator creates a new emulator with an empty memory.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program:    &asm.Program{},
		Breakpoint: map[uint8]bool{},
	}

	emu.Attach(machine.NewMachineWith(memory.NewRam(0, machine.MEMORY_SIZE)))

	return
}

// Attach replaces the machine, wiring its processor to the tape and the
// tracer. The program listing is kept.
func (emu *Emulator) Attach(m *machine.Machine) {
	m.Cpu.Input = &emu.Tape
	m.Cpu.Output = &emu.Tape
	m.Cpu.AddObserver(&emu.Tracer)

	emu.Machine = m
}

// opcodeDefines yields an OP_<MNEMONIC> equate for every instruction.
func opcodeDefines() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, info := range cpu.Opcodes() {
			if !yield("OP_"+info.Mnemonic, fmt.Sprintf("%#x", info.Opcode)) {
				return
			}
		}
	}
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines), opcodeDefines())
}

// Assemble parses source with the emulator defines, and loads the result.
func (emu *Emulator) Assemble(source io.Reader) (err error) {
	assembler := &asm.Assembler{Verbose: emu.Verbose}
	for equ, value := range emu.Defines() {
		assembler.Predefine(equ, value)
	}

	prog, err := assembler.Parse(source)
	if err != nil {
		return
	}

	err = emu.Load(prog)
	return
}

// Load clears memory, stores the program binary, and resets the machine.
func (emu *Emulator) Load(prog *asm.Program) (err error) {
	err = emu.Memory.Clear()
	if err != nil {
		return
	}

	err = emu.Memory.StoreN(uint(cpu.INITIAL_PC), prog.Binary())
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Reset()

	return
}

// Image returns the program binary, or the whole memory when no program
// was assembled.
func (emu *Emulator) Image() (image []byte, err error) {
	if len(emu.Program.Opcodes) != 0 {
		image = emu.Program.Binary()
		return
	}

	image, err = emu.Memory.FetchN(emu.Memory.Base(), emu.Memory.Len())
	return
}

// Reset the machine and the tape.
func (emu *Emulator) Reset() {
	emu.Tape.Rewind()
	emu.Machine.Verbose = emu.Verbose
	emu.Machine.Reset()
}

// LineNo returns the source line number of the instruction at PC, or 0
// if no source line generated it.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.PC)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// SetBreakpoint stops Continue when PC reaches address.
func (emu *Emulator) SetBreakpoint(address uint8) {
	emu.Breakpoint[address] = true
}

// ClearBreakpoint removes a breakpoint.
func (emu *Emulator) ClearBreakpoint(address uint8) {
	delete(emu.Breakpoint, address)
}

// BreakLabel sets a breakpoint on a program label.
func (emu *Emulator) BreakLabel(label string) (err error) {
	address, ok := emu.Program.Label[label]
	if !ok {
		err = fmt.Errorf("%w: %v", ErrLabelUnknown, label)
		return
	}

	emu.SetBreakpoint(uint8(address))
	return
}

// Tick executes a single instruction. done is set once the machine has
// nothing further to run.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Machine.Verbose = emu.Verbose

	if emu.Done() {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Step()
	if err != nil {
		return
	}

	done = emu.Done()
	if !done && emu.MaxCycles != 0 && emu.Cpu.Cycles >= emu.MaxCycles {
		err = machine.ErrCycleLimit
		return
	}

	return
}

// Continue ticks until the machine is done, or PC reaches a breakpoint.
// At least one instruction is executed.
func (emu *Emulator) Continue() (done bool, err error) {
	for {
		done, err = emu.Tick()
		if done || err != nil {
			return
		}

		if emu.Breakpoint[emu.Cpu.PC] {
			if emu.Verbose {
				log.Printf("emulator: breakpoint at %02X, line %d", emu.Cpu.PC, emu.LineNo())
			}
			return
		}
	}
}
