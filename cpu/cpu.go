package cpu

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/ezrec/mcsim/io"
	"github.com/ezrec/mcsim/memory"
)

// CharSource is the input device interface.
type CharSource io.CharSource

// CharSink is the output device interface.
type CharSink io.CharSink

// Cpu is the simulation context for the processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.
	Trace   bool // Set to notify observers after each instruction.

	Registers       // Visible processor state.
	Clock     Clock // Cycle counter and real-time pacing.

	Input  CharSource // Input device; nil behaves as an empty source.
	Output CharSink   // Output device; nil discards output.

	memory    memory.Memory
	observers []Observer
}

// NewCpu creates a processor attached to mem. mem may be nil, in which
// case SetMemory must be called before the processor executes anything.
func NewCpu(mem memory.Memory) (cpu *Cpu) {
	cpu = &Cpu{
		memory: mem,
	}

	return
}

// SetMemory attaches the memory the processor executes from.
func (cpu *Cpu) SetMemory(mem memory.Memory) {
	cpu.memory = mem
}

// Memory returns the attached memory, or nil.
func (cpu *Cpu) Memory() memory.Memory {
	return cpu.memory
}

// String returns the current register state as a string.
func (cpu *Cpu) String() string {
	return cpu.Registers.String()
}

// Reset the processor state.
// - Zeros the registers and flags.
// - Sets PC to INITIAL_PC.
// - Zeros the clock.
// - Notifies all observers.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers = Registers{
		PC:    INITIAL_PC,
		State: RUN_STATE_UNINITIALIZED,
	}
	cpu.Clock.Reset()

	for _, obs := range cpu.observers {
		obs.Reset()
	}
}

// Halted returns true once a HLT instruction has executed.
func (cpu *Cpu) Halted() bool {
	return cpu.State == RUN_STATE_HALTED
}

// fetch reads a data byte.
func (cpu *Cpu) fetch(address uint8) (value byte, err error) {
	if cpu.memory == nil {
		err = ErrMemoryUnassigned
		return
	}

	return cpu.memory.Fetch(uint(address))
}

// store writes a data byte.
func (cpu *Cpu) store(address uint8, value byte) (err error) {
	if cpu.memory == nil {
		err = ErrMemoryUnassigned
		return
	}

	return cpu.memory.Store(uint(address), value)
}

// FetchAndExecute executes the instruction at PC.
func (cpu *Cpu) FetchAndExecute() (err error) {
	if cpu.memory == nil {
		err = ErrMemoryUnassigned
		return
	}

	if cpu.Halted() {
		err = ErrHalted
		return
	}

	opcode, err := cpu.fetch(cpu.PC)
	if err != nil {
		err = &ErrFetch{Pc: cpu.PC, Err: err}
		return
	}

	_, err = Lookup(opcode)
	if err != nil {
		err = errors.Join(ErrOpcode(opcode), &ErrFetch{Pc: cpu.PC, Err: err})
		return
	}

	cpu.LastPC = cpu.PC
	cpu.IR = opcode
	cpu.PC++

	return cpu.Execute(opcode)
}

// Execute executes a single opcode, fetching its operand from PC if the
// instruction has one.
func (cpu *Cpu) Execute(opcode byte) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(opcode), err)
		}
	}()

	if cpu.memory == nil {
		err = ErrMemoryUnassigned
		return
	}

	if cpu.Halted() {
		err = ErrHalted
		return
	}

	info, err := Lookup(opcode)
	if err != nil {
		return
	}

	if info.Size == 2 {
		var operand byte
		operand, err = cpu.fetch(cpu.PC)
		if err != nil {
			err = &ErrFetch{Pc: cpu.PC, Err: err}
			return
		}
		cpu.Operand = operand
		cpu.PC++
	}

	cpu.State = RUN_STATE_RUNNING

	if cpu.Verbose {
		if info.Size == 2 {
			log.Printf("%02x: %v %02x", cpu.LastPC, info, cpu.Operand)
		} else {
			log.Printf("%02x: %v", cpu.LastPC, info)
		}
	}

	err = cpu.dispatch(opcode, info)
	if err != nil {
		return
	}

	cpu.Clock.Advance(info.Taken)
	cpu.Cycles = cpu.Clock.Cycles

	if cpu.Trace {
		for _, obs := range cpu.observers {
			obs.Trace(info, cpu.Registers)
		}
	}

	return
}

// address resolves the data address of a direct or indexed operand.
func (cpu *Cpu) address(kind OperandKind) uint8 {
	if kind == OPERAND_INDEXED {
		return cpu.X + cpu.Operand
	}
	return cpu.Operand
}

// value resolves an operand to the value it designates.
func (cpu *Cpu) value(kind OperandKind) (value byte, err error) {
	switch kind {
	case OPERAND_IMMEDIATE:
		value = cpu.Operand
	case OPERAND_DIRECT, OPERAND_INDEXED:
		value, err = cpu.fetch(cpu.address(kind))
	default:
		panic("operand has no value")
	}
	return
}

// dispatch performs the operation of a decoded instruction.
func (cpu *Cpu) dispatch(opcode byte, info Info) (err error) {
	switch opcode {
	case OP_NOP:
		// pass
	case OP_CLA:
		cpu.A = 0
	case OP_CLC:
		cpu.Flags.SetCarry(false)
	case OP_CLX:
		cpu.X = 0
	case OP_CMC:
		cpu.Flags.SetCarry(!cpu.Flags.Carry())
	case OP_INC:
		cpu.A++
		cpu.Flags.Result(cpu.A)
	case OP_DEC:
		cpu.A--
		cpu.Flags.Result(cpu.A)
	case OP_INX:
		cpu.X++
		cpu.Flags.Result(cpu.X)
	case OP_DEX:
		cpu.X--
		cpu.Flags.Result(cpu.X)
	case OP_TAX:
		cpu.X = cpu.A
	case OP_INI:
		cpu.A = cpu.readNumber(10)
		cpu.Flags.Result(cpu.A)
	case OP_INH:
		cpu.A = cpu.readNumber(16)
		cpu.Flags.Result(cpu.A)
	case OP_INB:
		cpu.A = cpu.readNumber(2)
		cpu.Flags.Result(cpu.A)
	case OP_INA:
		cpu.A = cpu.readChar()
		cpu.Flags.Result(cpu.A)
	case OP_OTI:
		cpu.writeString(strconv.Itoa(int(int8(cpu.A))))
	case OP_OTC:
		cpu.writeString(strconv.Itoa(int(cpu.A)))
	case OP_OTH:
		cpu.writeString(fmt.Sprintf("%02X", cpu.A))
	case OP_OTB:
		cpu.writeString(fmt.Sprintf("%08b", cpu.A))
	case OP_OTA:
		cpu.writeChar(cpu.A)
	case OP_PSH:
		sp := cpu.SP - 1
		err = cpu.store(sp, cpu.A)
		if err != nil {
			return
		}
		cpu.SP = sp
	case OP_POP:
		cpu.A, err = cpu.fetch(cpu.SP)
		if err != nil {
			return
		}
		cpu.SP++
		cpu.Flags.Result(cpu.A)
	case OP_SHL:
		cpu.Flags.SetCarry(cpu.A&0x80 != 0)
		cpu.A <<= 1
		cpu.Flags.Result(cpu.A)
	case OP_SHR:
		cpu.Flags.SetCarry(cpu.A&0x01 != 0)
		cpu.A >>= 1
		cpu.Flags.Result(cpu.A)
	case OP_RET:
		cpu.PC, err = cpu.fetch(cpu.SP)
		if err != nil {
			return
		}
		cpu.SP++
	case OP_HLT:
		cpu.State = RUN_STATE_HALTED
	case OP_LDA, OP_LDX, OP_LDI:
		var value byte
		value, err = cpu.value(info.Operand)
		if err != nil {
			return
		}
		cpu.A = value
		cpu.Flags.Result(cpu.A)
	case OP_LSP, OP_LSI:
		var value byte
		value, err = cpu.value(info.Operand)
		if err != nil {
			return
		}
		cpu.SP = value
	case OP_STA, OP_STX:
		err = cpu.store(cpu.address(info.Operand), cpu.A)
	case OP_ADD, OP_ADX, OP_ADI, OP_ADC, OP_ACX, OP_ACI:
		var value byte
		value, err = cpu.value(info.Operand)
		if err != nil {
			return
		}
		carry := (opcode == OP_ADC || opcode == OP_ACX || opcode == OP_ACI) && cpu.Flags.Carry()
		cpu.A = cpu.add(cpu.A, value, carry)
	case OP_SUB, OP_SBX, OP_SBI, OP_SBC, OP_SCX, OP_SCI:
		var value byte
		value, err = cpu.value(info.Operand)
		if err != nil {
			return
		}
		borrow := (opcode == OP_SBC || opcode == OP_SCX || opcode == OP_SCI) && cpu.Flags.Carry()
		cpu.A = cpu.sub(cpu.A, value, borrow)
	case OP_CMP, OP_CPX, OP_CPI:
		var value byte
		value, err = cpu.value(info.Operand)
		if err != nil {
			return
		}
		cpu.sub(cpu.A, value, false)
	case OP_ANA, OP_ANX, OP_ANI:
		var value byte
		value, err = cpu.value(info.Operand)
		if err != nil {
			return
		}
		cpu.A &= value
		cpu.Flags.SetCarry(false)
		cpu.Flags.Result(cpu.A)
	case OP_ORA, OP_ORX, OP_ORI:
		var value byte
		value, err = cpu.value(info.Operand)
		if err != nil {
			return
		}
		cpu.A |= value
		cpu.Flags.SetCarry(false)
		cpu.Flags.Result(cpu.A)
	case OP_BRN, OP_BZE, OP_BNZ, OP_BPZ, OP_BNG, OP_BCC, OP_BCS:
		if cpu.branchTaken(opcode) {
			cpu.PC = cpu.Operand
		}
	case OP_JSR:
		sp := cpu.SP - 1
		err = cpu.store(sp, cpu.PC)
		if err != nil {
			return
		}
		cpu.SP = sp
		cpu.PC = cpu.Operand
	default:
		err = ErrIllegalOpcode
	}

	return
}

// branchTaken evaluates the condition of a branch instruction.
func (cpu *Cpu) branchTaken(opcode byte) bool {
	fl := cpu.Flags
	switch opcode {
	case OP_BRN:
		return true
	case OP_BZE:
		return fl.Zero()
	case OP_BNZ:
		return !fl.Zero()
	case OP_BPZ:
		return fl.Parity() || fl.Zero()
	case OP_BNG:
		return !fl.Parity() && !fl.Zero()
	case OP_BCC:
		return !fl.Carry()
	case OP_BCS:
		return fl.Carry()
	}
	return false
}

// add returns a + b + carry, setting Carry on unsigned overflow.
func (cpu *Cpu) add(a, b byte, carry bool) (result byte) {
	sum := uint(a) + uint(b)
	if carry {
		sum++
	}
	result = byte(sum)
	cpu.Flags.SetCarry(sum > 0xff)
	cpu.Flags.Result(result)
	return
}

// sub returns a - b - borrow, setting Carry when a borrow was needed.
func (cpu *Cpu) sub(a, b byte, borrow bool) (result byte) {
	diff := int(a) - int(b)
	if borrow {
		diff--
	}
	result = byte(diff)
	cpu.Flags.SetCarry(diff < 0)
	cpu.Flags.Result(result)
	return
}
