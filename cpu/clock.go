package cpu

import (
	"time"
)

// Clock accumulates executed cycles and, in real-time mode, paces the
// caller so that simulated time does not run ahead of wall clock time.
type Clock struct {
	Hz       uint64 // Simulated clock frequency.
	RealTime bool   // Pace execution against wall clock time.
	Cycles   uint64 // Cycles since Reset.

	start time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// Reset zeros the cycle count and restarts the pacing reference.
func (clk *Clock) Reset() {
	clk.Cycles = 0
	clk.start = clk.time()
}

func (clk *Clock) time() time.Time {
	if clk.now != nil {
		return clk.now()
	}
	return time.Now()
}

// Elapsed returns the simulated time for the current cycle count.
func (clk *Clock) Elapsed() time.Duration {
	if clk.Hz == 0 {
		return 0
	}
	sec := clk.Cycles / clk.Hz
	rem := clk.Cycles % clk.Hz
	return time.Duration(sec)*time.Second + time.Duration(rem*uint64(time.Second)/clk.Hz)
}

// Advance adds cycles, then blocks until wall clock time catches up when
// RealTime is set.
func (clk *Clock) Advance(cycles int) {
	clk.Cycles += uint64(cycles)

	if !clk.RealTime || clk.Hz == 0 {
		return
	}

	if clk.start.IsZero() {
		clk.start = clk.time()
	}

	ahead := clk.start.Add(clk.Elapsed()).Sub(clk.time())
	if ahead <= 0 {
		return
	}

	if clk.sleep != nil {
		clk.sleep(ahead)
	} else {
		time.Sleep(ahead)
	}
}
