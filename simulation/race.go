package simulation

import "fmt"

// RaceState holds the attacker and honest chain lengths since the last point
// where both sides agreed on the tip.
type RaceState struct {
	Attacker int
	Honest   int
}

// Advance credits one block to the winner of the step.
func (s *RaceState) Advance(winner Kind) {
	if winner == AdversaryMiner {
		s.Attacker++
	} else {
		s.Honest++
	}
}

// Deficit is how far the attacker trails the honest chain.
func (s RaceState) Deficit() int {
	return s.Honest - s.Attacker
}

func (s RaceState) String() string {
	return fmt.Sprintf("{ Attacker: %v, Honest: %v }", s.Attacker, s.Honest)
}

// ReorgEvent records the attacker publishing a private branch longer than the
// public chain.
type ReorgEvent struct {
	Step        int
	Revealed    int
	Description string
}

func newReorgEvent(step, revealed int) ReorgEvent {
	return ReorgEvent{
		Step:        step,
		Revealed:    revealed,
		Description: fmt.Sprintf("reorg at step %d: attacker revealed %d", step, revealed),
	}
}

// Trajectory is the per-step history of a sample run.
type Trajectory struct {
	Snapshots []RaceState
	Events    []ReorgEvent
}

func (t *Trajectory) Len() int {
	return len(t.Snapshots)
}
