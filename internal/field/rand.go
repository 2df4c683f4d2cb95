package field

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand is the source of every random draw the field makes. Float64 must
// return values in [0, 1).
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded PCG generator. A zero seed uses the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
