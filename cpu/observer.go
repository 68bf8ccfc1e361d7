package cpu

// Observer is notified of processor activity. Observers are borrowed by the
// processor; they are never closed or otherwise managed by it.
type Observer interface {
	// Reset is called once when the processor is reset.
	Reset()
	// Trace is called after each executed instruction when tracing is on,
	// with the instruction metadata and the post-execution registers.
	Trace(info Info, regs Registers)
}

// AddObserver appends an observer. Observers are notified in the order
// they were added.
func (cpu *Cpu) AddObserver(obs Observer) {
	cpu.observers = append(cpu.observers, obs)
}

// RemoveObserver removes the first registration of obs.
func (cpu *Cpu) RemoveObserver(obs Observer) (ok bool) {
	for n, o := range cpu.observers {
		if o == obs {
			cpu.observers = append(cpu.observers[:n], cpu.observers[n+1:]...)
			ok = true
			return
		}
	}
	return
}

// Observers returns the registered observers in notification order.
func (cpu *Cpu) Observers() []Observer {
	return cpu.observers
}
