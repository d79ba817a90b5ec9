package simulation

import "fmt"

// Model selects the double-spend race an Estimator plays.
type Model uint

const (
	// Didactic races both chains from zero to k confirmations and then lets
	// the attacker chase. The attacker must strictly overtake.
	Didactic Model = iota
	// Realistic starts the chase only after the honest chain holds k
	// confirmations. A tie already counts as success.
	Realistic
)

const (
	c_didacticMaxSteps  = 10000
	c_realisticMaxSteps = 1000
	c_driftFactor       = 10
)

func (m Model) String() string {
	switch m {
	case Didactic:
		return "didactic"
	case Realistic:
		return "realistic"
	default:
		return fmt.Sprintf("model(%d)", uint(m))
	}
}

func ParseModel(name string) (Model, error) {
	switch name {
	case "didactic":
		return Didactic, nil
	case "realistic":
		return Realistic, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModel, name)
}

// Trial returns the single trial function of the model.
func (m Model) Trial(k int) (TrialFunc, error) {
	switch m {
	case Didactic:
		return func(gen *StepGenerator) bool { return didacticTrial(gen, k) }, nil
	case Realistic:
		return func(gen *StepGenerator) bool { return realisticTrial(gen, k) }, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownModel, m)
}

func didacticTrial(gen *StepGenerator, k int) bool {
	var state RaceState

	// Race to k confirmations. When p >= 1 the honest side never wins a step,
	// so that race alone is capped.
	for i := 0; state.Honest < k; i++ {
		if gen.P() >= 1 && i == c_didacticMaxSteps {
			break
		}
		state.Advance(gen.Next())
	}
	if state.Attacker > state.Honest {
		return true
	}

	for i := 0; i < c_didacticMaxSteps; i++ {
		state.Advance(gen.Next())
		if state.Attacker > state.Honest {
			return true
		}
		if state.Deficit() > c_driftFactor*k {
			return false
		}
	}
	return false
}

func realisticTrial(gen *StepGenerator, k int) bool {
	state := RaceState{Honest: k}
	for i := 0; i < c_realisticMaxSteps; i++ {
		state.Advance(gen.Next())
		if state.Attacker >= state.Honest {
			return true
		}
		if state.Deficit() > c_driftFactor*k {
			return false
		}
	}
	return false
}
