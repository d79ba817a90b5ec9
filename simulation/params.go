package simulation

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"lukechampine.com/blake3"
)

// Params are the inputs of one seeded estimator run.
type Params struct {
	Model  Model
	P      float64
	K      int
	Trials int
	Seed   int64
}

// Hash identifies the run. Two runs with equal hashes produce the same
// estimate.
func (p Params) Hash() (hash Hash) {
	buf := bytes.Buffer{}
	e := gob.NewEncoder(&buf)
	if err := e.Encode(p); err != nil {
		// unreachable for plain numeric fields
		buf.Reset()
		fmt.Fprintf(&buf, "%+v", p)
	}
	sum := blake3.Sum256(buf.Bytes())
	hash.SetBytes(sum[:])
	return hash
}

func (p Params) String() string {
	return fmt.Sprintf("{ Model: %v, P: %v, K: %v, Trials: %v, Seed: %v }", p.Model, p.P, p.K, p.Trials, p.Seed)
}
