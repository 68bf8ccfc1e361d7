package emulator

import (
	"bytes"
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/mcsim/asm"
	"github.com/ezrec/mcsim/cpu"
	"github.com/ezrec/mcsim/machine"
	"github.com/ezrec/mcsim/memory"
)

var countBits = []string{
	"        BEG",
	"        INI",
	"LOOP:   SHR",
	"        BCC EVEN",
	"        STA TEMP",
	"        LDA BITS",
	"        INC",
	"        STA BITS",
	"        LDA TEMP",
	"EVEN:   BNZ LOOP",
	"        LDA BITS",
	"        OTI",
	"        HLT",
	"TEMP:   DS 1",
	"BITS:   DC 0",
	"        END",
}

func doAssemble(t *testing.T, emu *Emulator, program []string, input string) (output *bytes.Buffer) {
	err := emu.Assemble(strings.NewReader(strings.Join(program, "\n")))
	require.NoError(t, err)

	output = &bytes.Buffer{}
	emu.Tape.Input = strings.NewReader(input)
	emu.Tape.Output = output
	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Program)
	assert.Equal(uint(machine.MEMORY_SIZE), emu.Memory.Len())
	assert.Equal([]cpu.Observer{&emu.Tracer}, emu.Cpu.Observers())
	assert.Equal(0, emu.LineNo())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(uint8(1), emu.Cpu.PC)
}

func TestEmulatorCountBits(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	output := doAssemble(t, emu, countBits, "65")

	var lines []int
	var done bool
	for !done {
		lines = append(lines, emu.LineNo())
		var err error
		done, err = emu.Tick()
		require.NoError(t, err)
	}

	assert.Equal([]int{2, 3, 4, 5, 6, 7, 8, 9, 10, 3, 4, 10}, lines[:12])
	assert.Equal(13, lines[len(lines)-1])
	assert.Equal("2", output.String())
	assert.Equal(uint64(58), emu.Cpu.Cycles)
	assert.Equal(cpu.RUN_STATE_HALTED, emu.Cpu.State)

	// Once done, further ticks do nothing.
	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(uint64(58), emu.Cpu.Cycles)
}

func TestEmulatorTrace(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doAssemble(t, emu, []string{"LDI 5", "INC", "HLT"}, "")

	var trace strings.Builder
	emu.Tracer.Output = &trace
	emu.Trace = true

	done, err := emu.Continue()
	assert.NoError(err)
	assert.True(done)

	assert.Equal(strings.Join([]string{
		"00: LDI 05   A=05 X=00 SP=00 F=P running",
		"02: INC      A=06 X=00 SP=00 F=P running",
		"03: HLT      A=06 X=00 SP=00 F=P halted",
	}, "\n")+"\n", trace.String())
	assert.Equal(3, emu.Tracer.Lines)

	// Reset clears the line count.
	emu.Reset()
	assert.Equal(0, emu.Tracer.Lines)

	// Without Trace, the tracer is not called.
	trace.Reset()
	emu.Trace = false
	_, err = emu.Continue()
	assert.NoError(err)
	assert.Empty(trace.String())
}

func TestEmulatorBreakpoint(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	output := doAssemble(t, emu, countBits, "65")

	assert.ErrorIs(emu.BreakLabel("NOWHERE"), ErrLabelUnknown)
	require.NoError(t, emu.BreakLabel("EVEN"))

	// 65 is 0b1000001; EVEN is reached once per bit.
	hits := 0
	for {
		done, err := emu.Continue()
		require.NoError(t, err)
		if done {
			break
		}
		hits++
		assert.Equal(uint8(0x0D), emu.Cpu.PC)
		assert.Equal(10, emu.LineNo())
	}
	assert.Equal(7, hits)
	assert.Equal("2", output.String())

	emu.ClearBreakpoint(0x0D)
	assert.Empty(emu.Breakpoint)

	emu.Tape.Input = strings.NewReader("65")
	emu.Reset()
	done, err := emu.Continue()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doAssemble(t, emu, []string{"NOP", "DC 0xEE"}, "")

	_, err := emu.Continue()
	assert.ErrorIs(err, cpu.ErrIllegalOpcode)
	var runtime *ErrRuntime
	if assert.True(errors.As(err, &runtime)) {
		assert.Equal(2, runtime.LineNo)
	}
}

func TestEmulatorCycleLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doAssemble(t, emu, []string{"LOOP: BRN LOOP"}, "")
	emu.MaxCycles = 6

	done, err := emu.Continue()
	assert.False(done)
	assert.ErrorIs(err, machine.ErrCycleLimit)
	assert.Equal(uint64(6), emu.Cpu.Cycles)
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	defines := maps.Collect(emu.Defines())
	assert.Equal("256", defines["MEMORY_SIZE"])
	assert.Equal("0x18", defines["OP_HLT"])
	assert.Equal("0x0", defines["OP_NOP"])
	assert.Len(defines, len(cpu.Opcodes())+1)

	doAssemble(t, emu, []string{"DC OP_HLT", "DC $(MEMORY_SIZE - 1)"}, "")
	assert.Equal([]byte{cpu.OP_HLT, 0xFF}, emu.Program.Binary())
}

func TestEmulatorAssembleError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doAssemble(t, emu, []string{"HLT"}, "")
	prog := emu.Program

	err := emu.Assemble(strings.NewReader("NOP\nBOGUS\n"))
	var syntax *asm.ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(2, syntax.LineNo)
	}
	assert.Same(prog, emu.Program)

	fetched, err := emu.Memory.Fetch(0)
	assert.NoError(err)
	assert.Equal(cpu.OP_HLT, fetched)
}

func TestEmulatorAttach(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doAssemble(t, emu, countBits, "")

	rom, err := memory.NewRom(0, machine.MEMORY_SIZE, emu.Program.Binary())
	require.NoError(t, err)
	emu.Attach(machine.NewMachineWith(rom))
	emu.Reset()

	assert.Equal([]cpu.Observer{&emu.Tracer}, emu.Cpu.Observers())

	// The ROM machine reads the tape, and faults on its first store.
	emu.Tape.Input = strings.NewReader("1")
	_, err = emu.Continue()
	assert.ErrorIs(err, memory.ErrWriteProtected)
	var runtime *ErrRuntime
	if assert.True(errors.As(err, &runtime)) {
		assert.Equal(5, runtime.LineNo)
	}
}

func TestEmulatorImage(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doAssemble(t, emu, []string{"LDI 5", "HLT"}, "")

	image, err := emu.Image()
	assert.NoError(err)
	assert.Equal([]byte{cpu.OP_LDI, 0x05, cpu.OP_HLT}, image)

	// A loaded binary image has no listing; the whole memory is saved.
	program := []byte{cpu.OP_INI, cpu.OP_OTI, cpu.OP_HLT}
	m, err := machine.NewMachine(program)
	require.NoError(t, err)
	emu = NewEmulator()
	emu.Attach(m)

	image, err = emu.Image()
	assert.NoError(err)
	assert.Len(image, machine.MEMORY_SIZE)
	assert.Equal(program, image[:len(program)])
	assert.Equal(make([]byte, machine.MEMORY_SIZE-len(program)), image[len(program):])
}
