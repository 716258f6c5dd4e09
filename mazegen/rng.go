package mazegen

import (
	"math/rand"
	"time"
)

// resolveSeed applies the seed policy: 0 means "pick one from the clock".
// The returned seed is never 0 so it can be replayed verbatim.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	s := time.Now().UnixNano()
	if s == 0 {
		s = 1
	}

	return s
}

// rngFromSeed returns a deterministic *rand.Rand for a non-zero seed.
// Not goroutine-safe; every Generate call owns its stream.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
