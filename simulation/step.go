package simulation

import "math/rand"

// Kind identifies which side of the race found a block.
type Kind uint

const (
	HonestMiner Kind = iota
	AdversaryMiner
)

func (k Kind) String() string {
	switch k {
	case HonestMiner:
		return "honest"
	case AdversaryMiner:
		return "adversary"
	default:
		return "unknown"
	}
}

// StepGenerator is the biased coin of the race. Each call to Next is an
// independent draw that the adversary wins with probability p.
type StepGenerator struct {
	p   float64
	rng *rand.Rand
}

func NewStepGenerator(p float64, rng *rand.Rand) *StepGenerator {
	return &StepGenerator{p: p, rng: rng}
}

// Next draws the winner of the next step. p is not range checked: p >= 1
// always yields AdversaryMiner and p <= 0 always yields HonestMiner.
func (g *StepGenerator) Next() Kind {
	if g.rng.Float64() < g.p {
		return AdversaryMiner
	}
	return HonestMiner
}

func (g *StepGenerator) P() float64 {
	return g.p
}
