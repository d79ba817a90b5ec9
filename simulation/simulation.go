package simulation

import (
	"github.com/dominant-strategies/go-quai/event"
	"github.com/sirupsen/logrus"
)

// Simulation runs sample races and broadcasts every reorg it observes.
type Simulation struct {
	reorgFeed event.Feed
	logger    *logrus.Entry
}

func NewSimulation(logger *logrus.Entry) *Simulation {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Simulation{logger: logger.WithField("component", "sample")}
}

// SubscribeReorgEvent registers ch for ReorgEvent values. Delivery happens
// inside Run, so the subscriber must keep draining ch while a run is active.
func (sim *Simulation) SubscribeReorgEvent(ch chan<- ReorgEvent) event.Subscription {
	return sim.reorgFeed.Subscribe(ch)
}

// Run plays a race of the given number of steps. A nil seed draws one from
// the operating system, so only seeded runs are reproducible.
func (sim *Simulation) Run(p float64, steps int, seed *int64) (*Trajectory, error) {
	rng, err := NewRand(seed)
	if err != nil {
		return nil, err
	}
	return sim.RunWith(NewStepGenerator(p, rng), steps), nil
}

// RunWith plays the race against an existing generator.
func (sim *Simulation) RunWith(gen *StepGenerator, steps int) *Trajectory {
	traj := &Trajectory{}
	if steps <= 0 {
		return traj
	}
	traj.Snapshots = make([]RaceState, 0, steps)

	var state RaceState
	for t := 0; t < steps; t++ {
		state.Advance(gen.Next())

		// A longer private branch replaces the public chain and the attacker
		// starts a new branch on top of it.
		if state.Attacker > state.Honest {
			state.Honest = state.Attacker
			ev := newReorgEvent(t, state.Attacker)
			traj.Events = append(traj.Events, ev)
			sim.reorgFeed.Send(ev)
			state.Attacker = 0
		}

		traj.Snapshots = append(traj.Snapshots, state)
	}

	sim.logger.WithFields(logrus.Fields{
		"p":      gen.P(),
		"steps":  steps,
		"reorgs": len(traj.Events),
		"honest": state.Honest,
	}).Debug("Sample run finished")
	return traj
}
