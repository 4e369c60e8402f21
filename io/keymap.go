package io

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/chip8/cpu"
)

// Keymap translates host key names to keypad keys.
// Names are matched case insensitively.
type Keymap map[string]uint8

// DefaultKeymap is the conventional QWERTY layout of the COSMAC VIP keypad.
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
func DefaultKeymap() Keymap {
	return Keymap{
		"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xC,
		"q": 0x4, "w": 0x5, "e": 0x6, "r": 0xD,
		"a": 0x7, "s": 0x8, "d": 0x9, "f": 0xE,
		"z": 0xA, "x": 0x0, "c": 0xB, "v": 0xF,
	}
}

// Bind maps a host key name to a keypad key.
func (km Keymap) Bind(name string, key int) (err error) {
	if key < 0 || key >= cpu.KEYPAD_SIZE {
		err = fmt.Errorf("%w: %v = %d", ErrKeyRange, name, key)
		return
	}

	km[strings.ToLower(name)] = uint8(key)
	return
}

// Lookup returns the keypad key for a host key name.
func (km Keymap) Lookup(name string) (key uint8, ok bool) {
	key, ok = km[strings.ToLower(name)]
	return
}

// Key returns the keypad key for a host key name, or ErrKeyUnknown.
func (km Keymap) Key(name string) (key uint8, err error) {
	key, ok := km.Lookup(name)
	if !ok {
		err = fmt.Errorf("%w: %v", ErrKeyUnknown, name)
	}
	return
}

// Names returns the bound host key names, sorted.
func (km Keymap) Names() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(km)))
}
