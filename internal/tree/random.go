package tree

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Stream salts. Each dataset draws from its own stream so that resizing one
// population does not reshuffle the others.
const (
	saltFoliage  = "foliage"
	saltSparkles = "sparkles"
)

func seededRNG(seed int64, salt string) *rand.Rand {
	// Non-cryptographic PRNG is intentional for reproducible generation.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, salt+":a"), seedWord(seed, salt+":b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// uniform returns a float32 in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}
