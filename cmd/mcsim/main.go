// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/ezrec/mcsim/emulator"
	"github.com/ezrec/mcsim/machine"
	"github.com/ezrec/mcsim/memory"
)

func main() {
	config := parseArgs()

	emu := emulator.NewEmulator()
	emu.Verbose = config.Verbose

	err := load(emu, config)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	switch {
	case len(config.Save) != 0:
		err = save(emu, config.Save)
	case config.List:
		err = emu.ListCode(os.Stdout)
	default:
		err = run(emu, config)
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}

// load assembles or reads the program, and places it in memory.
func load(emu *emulator.Emulator, c *Config) (err error) {
	if len(c.Source) != 0 {
		var inf *os.File
		inf, err = os.Open(c.Source)
		if err != nil {
			return errors.Wrap(err, "source")
		}
		defer inf.Close()

		err = emu.Assemble(inf)
		if err != nil {
			return errors.Wrapf(err, "assemble %v", c.Source)
		}
	} else {
		var m *machine.Machine
		m, err = machine.LoadFile(c.Image)
		if err != nil {
			return
		}
		emu.Attach(m)
	}

	if c.Rom {
		var image []byte
		image, err = emu.Memory.FetchN(0, emu.Memory.Len())
		if err != nil {
			return
		}
		var rom *memory.Rom
		rom, err = memory.NewRom(0, machine.MEMORY_SIZE, image)
		if err != nil {
			return errors.Wrap(err, "rom")
		}
		emu.Attach(machine.NewMachineWith(rom))
	}

	for _, brk := range c.Breakpoints {
		address, perr := strconv.ParseUint(brk, 0, 8)
		if perr == nil {
			emu.SetBreakpoint(uint8(address))
			continue
		}
		err = emu.BreakLabel(brk)
		if err != nil {
			return
		}
	}

	emu.Reset()

	return
}

// save writes the memory image of the program.
func save(emu *emulator.Emulator, path string) (err error) {
	image, err := emu.Image()
	if err != nil {
		return
	}

	err = os.WriteFile(path, image, 0o644)
	if err != nil {
		err = errors.Wrap(err, "save")
	}

	return
}

// run executes the program from reset, reporting each breakpoint.
func run(emu *emulator.Emulator, c *Config) (err error) {
	if c.Input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		var inf *os.File
		inf, err = os.Open(c.Input)
		if err != nil {
			return errors.Wrap(err, "tape input")
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if c.Output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		var ouf *os.File
		ouf, err = os.Create(c.Output)
		if err != nil {
			return errors.Wrap(err, "tape output")
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	emu.Tracer.Output = os.Stderr
	emu.Trace = c.Trace
	emu.Cpu.Clock.Hz = c.Hz
	emu.Cpu.Clock.RealTime = c.RealTime
	emu.MaxCycles = c.MaxCycles
	emu.StopOnInputFault = c.StopOnInput

	emu.Reset()
	for {
		var done bool
		done, err = emu.Continue()
		if err != nil {
			return
		}
		if done {
			break
		}
		fmt.Fprintf(os.Stderr, "break: line %d\n%v", emu.LineNo(), emu.Cpu.Registers)
	}

	if emu.Tape.Err != nil {
		return errors.Wrap(emu.Tape.Err, "tape output")
	}

	if c.Verbose {
		log.Printf("%v: %v after %d cycles, %v", os.Args[0], emu.Cpu.State, emu.Cpu.Cycles, emu.Cpu.Clock.Elapsed())
	}

	if c.Dump {
		err = emu.DisplayMemory(os.Stdout)
	}

	return
}
