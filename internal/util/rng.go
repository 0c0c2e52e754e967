package util

import (
	"math/rand"
	"time"
)

// New returns a generator for seed. Seed 0 means "pick one from the clock";
// the chosen seed is returned so runs can be replayed.
func New(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
