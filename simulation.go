package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/shreekarashastry/doublespend/chart"
	"github.com/shreekarashastry/doublespend/report"
	"github.com/shreekarashastry/doublespend/simulation"
)

// renderer turns a sample trajectory into an artifact.
type renderer interface {
	Render(traj *simulation.Trajectory) error
}

func run(cfg *Config, logger *logrus.Logger, stdout io.Writer) error {
	switch cfg.Mode {
	case modeSample:
		return runSample(cfg, logger, chart.New(cfg.Out), stdout)
	case modeBatch:
		return runBatch(cfg, logger, stdout)
	}
	return fmt.Errorf("%w: %q", ErrInvalidMode, cfg.Mode)
}

func runSample(cfg *Config, logger *logrus.Logger, r renderer, stdout io.Writer) error {
	sim := simulation.NewSimulation(logrus.NewEntry(logger))

	reorgCh := make(chan simulation.ReorgEvent, 16)
	sub := sim.SubscribeReorgEvent(reorgCh)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case ev := <-reorgCh:
				logReorg(logger, ev)
			case <-sub.Err():
				// Unsubscribed, flush what is still buffered
				for {
					select {
					case ev := <-reorgCh:
						logReorg(logger, ev)
					default:
						return
					}
				}
			}
		}
	}()

	traj, err := sim.Run(cfg.P, cfg.Steps, cfg.Seed)
	sub.Unsubscribe()
	<-done
	if err != nil {
		return err
	}

	if err := r.Render(traj); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"steps":  traj.Len(),
		"reorgs": len(traj.Events),
		"out":    cfg.Out,
	}).Info("Sample run complete")
	_, err = fmt.Fprintf(stdout, "Sample run complete. Chart saved as %s\n", cfg.Out)
	return err
}

func logReorg(logger *logrus.Logger, ev simulation.ReorgEvent) {
	logger.WithFields(logrus.Fields{
		"step":     ev.Step,
		"revealed": ev.Revealed,
	}).Debug(ev.Description)
}

func runBatch(cfg *Config, logger *logrus.Logger, stdout io.Writer) error {
	model, err := simulation.ParseModel(cfg.Model)
	if err != nil {
		return err
	}
	est := simulation.NewEstimator(model, simulation.NewEngine(cfg.Threads), simulation.NewResultDB(), logrus.NewEntry(logger))

	// Sweeps need a fixed seed so every depth and the headline agree.
	seed := cfg.Seed
	if seed == nil && cfg.KMax > 0 {
		s, err := simulation.RandomSeed()
		if err != nil {
			return err
		}
		seed = &s
	}

	simulated, err := est.Estimate(cfg.P, cfg.K, cfg.Trials, seed)
	if err != nil {
		return err
	}
	b := &report.Batch{
		Model:       est.Model().String(),
		P:           cfg.P,
		K:           cfg.K,
		Trials:      cfg.Trials,
		Seed:        seed,
		Simulated:   simulated,
		Theoretical: simulation.Bound(cfg.P, cfg.K),
	}

	for k := 1; k <= cfg.KMax; k++ {
		rate, err := est.Estimate(cfg.P, k, cfg.Trials, seed)
		if err != nil {
			return err
		}
		b.Sweep = append(b.Sweep, report.Row{K: k, Simulated: rate, Theoretical: simulation.Bound(cfg.P, k)})
	}

	logger.WithFields(logrus.Fields{
		"model":     b.Model,
		"p":         b.P,
		"k":         b.K,
		"trials":    b.Trials,
		"simulated": b.Simulated,
	}).Info("Batch run complete")

	if cfg.JSON {
		return b.WriteJSON(stdout)
	}
	return b.WriteText(stdout)
}
