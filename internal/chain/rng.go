package chain

import (
	crand "crypto/rand"
	"math"
	"math/big"
	"math/rand/v2"
)

// newSource builds the PCG source backing one chain. The seed is
// expanded through splitmix64 so that adjacent seeds (ensemble members
// use seed, seed+1, ...) land in unrelated regions of the state space.
func newSource(seed int64) *rand.PCG {
	x := uint64(seed) ^ 0x9e3779b97f4a7c15
	hi := splitmix64(x)
	lo := splitmix64(x ^ 0xda942042e4dd58b5)
	return rand.NewPCG(hi, lo)
}

// RandomSeed draws a seed from the system's cryptographic source, for
// callers that did not ask for a reproducible run.
func RandomSeed() int64 {
	n, _ := crand.Int(crand.Reader, big.NewInt(math.MaxInt64))
	return n.Int64()
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
