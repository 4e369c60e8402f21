package cpu

const (
	KEYPAD_SIZE = 16 // Keys 0-F.
)

// Keypad holds the pressed state of each key.
type Keypad [KEYPAD_SIZE]bool

// Pressed returns the lowest numbered key that is down.
func (kp *Keypad) Pressed() (key uint8, ok bool) {
	for n, down := range kp {
		if down {
			return uint8(n), true
		}
	}
	return
}

// Down reports whether key is pressed. Only the low nibble of key is used.
func (kp *Keypad) Down(key uint8) bool {
	return kp[key&0xf]
}

func (kp *Keypad) Reset() {
	clear(kp[:])
}
