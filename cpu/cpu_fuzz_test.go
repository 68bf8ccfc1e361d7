package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mcsim/io"
	"github.com/ezrec/mcsim/memory"
)

func FuzzCpu(f *testing.F) {
	for op := range 0x40 {
		f.Add(uint8(op), uint8(0x80), uint8(0x7f), uint8(0x01), false)
		f.Add(uint8(op), uint8(0x00), uint8(0xff), uint8(0xff), true)
	}

	f.Fuzz(func(t *testing.T, opcode uint8, operand uint8, a uint8, x uint8, carry bool) {
		assert := assert.New(t)

		ram := memory.NewRam(0, 256)
		assert.NoError(ram.StoreN(0x40, []byte{opcode, operand}))
		for n := range 0x40 {
			assert.NoError(ram.Store(uint(n), byte(n*7)))
		}

		cpu := NewCpu(ram)
		cpu.Input = io.NewBuffer("12")
		cpu.Output = io.Discard
		cpu.Reset()
		cpu.PC = 0x40
		cpu.A = a
		cpu.X = x
		cpu.SP = 0x20
		cpu.Flags.SetCarry(carry)
		before := cpu.Registers

		err := cpu.FetchAndExecute()

		info, lerr := Lookup(opcode)
		if lerr != nil {
			assert.True(errors.Is(err, ErrIllegalOpcode))
			assert.Equal(before, cpu.Registers)
			return
		}

		assert.NoError(err)
		assert.Equal(uint64(info.Size), cpu.Cycles)
		assert.Equal(uint8(0x40), cpu.LastPC)
		assert.Equal(opcode, cpu.IR)

		switch {
		case opcode == OP_HLT:
			assert.Equal(RUN_STATE_HALTED, cpu.State)
		case opcode == OP_RET:
			assert.Equal(uint8(0x20*7), cpu.PC)
		case opcode == OP_JSR, info.Operand == OPERAND_ADDRESS && cpu.PC == operand:
			assert.Equal(operand, cpu.PC)
		default:
			assert.Equal(uint8(0x40+info.Size), cpu.PC)
		}

		// Results that recompute flags obey the flag law.
		switch opcode {
		case OP_INC, OP_DEC, OP_LDA, OP_LDX, OP_LDI, OP_ADD, OP_ADI, OP_SUB, OP_SBI, OP_ANA, OP_ANI, OP_ORA, OP_ORI, OP_SHL, OP_SHR:
			assert.Equal(cpu.A == 0, cpu.Flags.Zero())
			assert.Equal(cpu.A != 0 && cpu.A&0x80 == 0, cpu.Flags.Parity())
		}
	})
}
