// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package machine assembles a processor and its memory into a runnable
// machine, and provides listing and memory dump views of it.
package machine

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/ezrec/mcsim/cpu"
	"github.com/ezrec/mcsim/memory"
)

const (
	MEMORY_SIZE = 256 // Bytes of memory; the whole 8-bit address space.
)

// Machine state. CPU + memory.
type Machine struct {
	Verbose          bool          // If set, enables verbose logging.
	StopOnInputFault bool          // If set, Run also stops on NoData or BadData.
	MaxCycles        uint64        // If non-zero, Run fails after this many cycles.
	*cpu.Cpu                       // Reference to the CPU simulation.
	Memory           memory.Memory // Memory owned by the machine.
}

// NewMachine creates a machine with a MEMORY_SIZE byte RAM holding program
// at address 0. The remainder of memory is zero.
func NewMachine(program []byte) (m *Machine, err error) {
	ram := memory.NewRam(0, MEMORY_SIZE)
	err = ram.StoreN(0, program)
	if err != nil {
		return
	}

	m = NewMachineWith(ram)
	return
}

// NewMachineWith creates a machine around a caller supplied memory.
func NewMachineWith(mem memory.Memory) (m *Machine) {
	m = &Machine{
		Cpu:    cpu.NewCpu(mem),
		Memory: mem,
	}

	return
}

// LoadFile creates a machine from a binary program image.
func LoadFile(path string) (m *Machine, err error) {
	program, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrap(err, "load image")
		return
	}

	m, err = NewMachine(program)
	if err != nil {
		err = errors.Wrapf(err, "load image %v", path)
	}

	return
}

// Reset the machine to its power-on state. Memory is untouched.
func (m *Machine) Reset() {
	m.Cpu.Verbose = m.Verbose
	m.Cpu.Reset()
}

// Step executes a single instruction.
func (m *Machine) Step() (err error) {
	m.Cpu.Verbose = m.Verbose

	pc := m.Cpu.PC
	err = m.Cpu.FetchAndExecute()
	if err != nil {
		err = &ErrRuntime{Pc: pc, Err: err}
	}

	return
}

// Done returns true when Run would stop in the current state.
func (m *Machine) Done() bool {
	switch m.Cpu.State {
	case cpu.RUN_STATE_HALTED:
		return true
	case cpu.RUN_STATE_NO_DATA, cpu.RUN_STATE_BAD_DATA:
		return m.StopOnInputFault
	}
	return false
}

// Run resets the machine and executes instructions until it halts.
func (m *Machine) Run() (err error) {
	m.Reset()

	for !m.Done() {
		err = m.Step()
		if err != nil {
			return
		}

		if m.MaxCycles != 0 && m.Cpu.Cycles >= m.MaxCycles && !m.Done() {
			err = &ErrRuntime{Pc: m.Cpu.PC, Err: ErrCycleLimit}
			return
		}
	}

	if m.Verbose {
		log.Printf("machine: %v after %d cycles", m.Cpu.State, m.Cpu.Cycles)
	}

	return
}

// decode renders the instruction at address. On an operand fetch error,
// text and length still describe the opcode.
func (m *Machine) decode(address uint) (text string, length int, opcode byte, err error) {
	opcode, err = m.Memory.Fetch(address)
	if err != nil {
		return
	}

	info, err := cpu.Lookup(opcode)
	if err != nil {
		text = info.String()
		length = 1
		err = nil
		return
	}

	text = info.Mnemonic
	length = info.Size
	if info.Size == 1 {
		return
	}

	operands, err := m.Memory.FetchN(address+1, uint(info.Size-1))
	if err != nil {
		return
	}
	for _, op := range operands {
		text += fmt.Sprintf(" %02X", op)
	}

	return
}

// Disassemble renders the instruction at address, and returns its length
// in bytes. Unassigned opcodes render as "???" with a length of one.
func (m *Machine) Disassemble(address uint) (text string, length int, err error) {
	text, length, _, err = m.decode(address)
	if err != nil {
		text = ""
		length = 0
	}

	return
}

// ListCode writes a disassembly listing starting from the reset PC, until
// a HLT instruction or the end of memory. An instruction cut short by the
// end of memory is listed without its operands.
func (m *Machine) ListCode(w io.Writer) (err error) {
	end := m.Memory.Base() + m.Memory.Len()
	for address := uint(cpu.INITIAL_PC); address < end; {
		var text string
		var length int
		var opcode byte
		text, length, opcode, err = m.decode(address)
		truncated := err != nil && length > 1 && errors.Is(err, memory.ErrOutOfRange)
		if err != nil && !truncated {
			return
		}

		_, err = fmt.Fprintf(w, "%08X    %s\n", address, text)
		if err != nil || truncated || opcode == cpu.OP_HLT {
			return
		}

		address += uint(length)
	}

	return
}

// DisplayMemory writes a hex and ASCII dump of memory.
func (m *Machine) DisplayMemory(w io.Writer) (err error) {
	return m.Memory.Dump(w)
}
