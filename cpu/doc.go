// Package cpu implements the processor of the mcsim 8-bit machine.
//
// The processor has an 8-bit accumulator (A), index register (X), stack
// pointer (SP) and program counter (PC), three condition flags (Carry, Zero,
// Parity) and a run state. Instructions are one byte, or one byte followed
// by an operand byte that is interpreted as a direct address, an address
// relative to X, an immediate value or a branch target.
//
// The processor reads and writes a memory.Memory, consumes characters from a
// CharSource for its input instructions and writes characters to a CharSink
// for its output instructions. Observers registered with AddObserver are
// notified after every executed instruction when Trace is set.
package cpu
