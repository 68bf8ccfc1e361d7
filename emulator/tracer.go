package emulator

import (
	"fmt"
	"io"

	"github.com/ezrec/mcsim/cpu"
)

const (
	// TRACE_FORMAT is the layout of a trace line: PC, instruction, A, X,
	// SP, flags and run state.
	TRACE_FORMAT = "%02X: %-8s A=%02X X=%02X SP=%02X F=%v %v\n"
)

// Tracer is an observer writing one line per executed instruction.
type Tracer struct {
	Output io.Writer // Destination of trace lines; nil disables output.
	Lines  int       // Lines written since the last reset.
	Err    error     // First write error, if any.
}

var _ cpu.Observer = (*Tracer)(nil)

func (tr *Tracer) Reset() {
	tr.Lines = 0
	tr.Err = nil
}

func (tr *Tracer) Trace(info cpu.Info, regs cpu.Registers) {
	if tr.Output == nil || tr.Err != nil {
		return
	}

	text := info.Mnemonic
	if info.Size > 1 {
		text += fmt.Sprintf(" %02X", regs.Operand)
	}

	_, tr.Err = fmt.Fprintf(tr.Output, TRACE_FORMAT,
		regs.LastPC, text, regs.A, regs.X, regs.SP, regs.Flags, regs.State)
	if tr.Err == nil {
		tr.Lines++
	}
}
