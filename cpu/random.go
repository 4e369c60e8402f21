package cpu

import (
	"math/rand/v2"
	"time"
)

// Random is the source of the RND instruction.
type Random interface {
	Uint32() uint32
}

// NewRandom returns a PCG generator for seed. A zero seed is replaced
// by the wall clock.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
