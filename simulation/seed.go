package simulation

import (
	crand "crypto/rand"
	"math"
	"math/big"
	"math/rand"
)

// RandomSeed reads a fresh seed from the operating system.
func RandomSeed() (int64, error) {
	seed, err := crand.Int(crand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		return 0, err
	}
	return seed.Int64(), nil
}

// NewRand returns a generator seeded with *seed, or with a random seed when
// seed is nil.
func NewRand(seed *int64) (*rand.Rand, error) {
	if seed != nil {
		return rand.New(rand.NewSource(*seed)), nil
	}
	s, err := RandomSeed()
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewSource(s)), nil
}
