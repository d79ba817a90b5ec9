package simulation

import (
	"encoding/binary"
	"encoding/hex"

	"lukechampine.com/blake3"
)

const HashLength = 32

type Hash [HashLength]byte

// SetBytes sets the hash to the value of b.
// If b is larger than len(h), b will be cropped from the left.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-HashLength:]
	}

	copy(h[HashLength-len(b):], b)
}

func (h Hash) String() string {
	enc := make([]byte, len(h[:])*2+2)
	copy(enc, "0x")
	hex.Encode(enc[2:], h[:])
	return string(enc)
}

// Uint64 returns the first eight bytes of the hash as an integer.
func (h Hash) Uint64() uint64 {
	return binary.BigEndian.Uint64(h[:8])
}

// TrialSeed derives the generator seed of a single trial from the run seed,
// so every trial draws from its own stream regardless of which thread runs it.
func TrialSeed(base int64, trial int) int64 {
	var data [16]byte
	binary.BigEndian.PutUint64(data[:8], uint64(base))
	binary.BigEndian.PutUint64(data[8:], uint64(trial))
	var hash Hash
	sum := blake3.Sum256(data[:])
	hash.SetBytes(sum[:])
	return int64(hash.Uint64() >> 1)
}
