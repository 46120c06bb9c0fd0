// Package randutil builds the seeded random sources used for shuffling.
// Every shoe gets its own *rand.Rand so simulated games stay reproducible
// and never share generator state.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns the seed for the index-th independent stream under a
// master seed. Streams for different indexes do not overlap in practice.
func Derive(master int64, index int) int64 {
	return int64(mix(uint64(master) + uint64(index+1)*goldenRatio64))
}

// Seed returns seed unchanged unless it is zero, in which case a
// time-based seed is returned. Zero means "pick one for me" on the CLI.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
