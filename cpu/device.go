package cpu

// Character I/O for the input and output instructions.
//
// Exhausted or malformed input is not a fault: the instruction completes
// with a zero result and the condition is left in the run state.

func (cpu *Cpu) noMoreData() bool {
	return cpu.Input == nil || cpu.Input.NoMoreData()
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// digit returns the value of ch as a digit in base.
func digit(ch byte, base uint) (value uint, ok bool) {
	switch {
	case ch >= '0' && ch <= '9':
		value = uint(ch - '0')
	case ch >= 'a' && ch <= 'f':
		value = uint(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		value = uint(ch-'A') + 10
	default:
		return
	}

	ok = value < base
	return
}

// readNumber reads an unsigned number in base, or a signed number in base
// 10, from the input. Leading white space is skipped, and the first
// character that is not a digit ends the number and is consumed.
// The result is taken modulo 256.
func (cpu *Cpu) readNumber(base uint) (value byte) {
	var ch byte
	for {
		if cpu.noMoreData() {
			cpu.State = RUN_STATE_NO_DATA
			return
		}
		ch = cpu.Input.ReadChar()
		if !isSpace(ch) {
			break
		}
	}

	negative := false
	if base == 10 && (ch == '-' || ch == '+') {
		negative = ch == '-'
		if cpu.noMoreData() {
			cpu.State = RUN_STATE_BAD_DATA
			return
		}
		ch = cpu.Input.ReadChar()
	}

	d, ok := digit(ch, base)
	if !ok {
		cpu.State = RUN_STATE_BAD_DATA
		return
	}

	var n uint
	for ok {
		n = (n*base + d) & 0xff
		if cpu.noMoreData() {
			break
		}
		d, ok = digit(cpu.Input.ReadChar(), base)
	}

	if negative {
		n = -n
	}

	value = byte(n)
	return
}

// readChar reads a single character from the input.
func (cpu *Cpu) readChar() (value byte) {
	if cpu.noMoreData() {
		cpu.State = RUN_STATE_NO_DATA
		return
	}

	value = cpu.Input.ReadChar()
	return
}

func (cpu *Cpu) writeChar(ch byte) {
	if cpu.Output != nil {
		cpu.Output.WriteChar(ch)
	}
}

func (cpu *Cpu) writeString(str string) {
	for n := range len(str) {
		cpu.writeChar(str[n])
	}
}
