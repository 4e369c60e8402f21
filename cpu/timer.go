package cpu

// Timers are the delay (DT) and sound (ST) countdown registers.
type Timers struct {
	Delay uint8
	Sound uint8
}

// Tick decrements each non-zero timer by one.
func (tm *Timers) Tick() {
	if tm.Delay > 0 {
		tm.Delay--
	}
	if tm.Sound > 0 {
		tm.Sound--
	}
}

// Sounding is true while the sound timer is running.
func (tm *Timers) Sounding() bool {
	return tm.Sound > 0
}

func (tm *Timers) Reset() {
	*tm = Timers{}
}
