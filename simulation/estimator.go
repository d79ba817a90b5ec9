package simulation

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Estimator measures the double-spend success rate of one Model by playing
// many independent trials.
type Estimator struct {
	model  Model
	engine *Engine
	db     *ResultDB
	logger *logrus.Entry
}

func NewEstimator(model Model, engine *Engine, db *ResultDB, logger *logrus.Entry) *Estimator {
	if engine == nil {
		engine = NewEngine(1)
	}
	if db == nil {
		db = NewResultDB()
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Estimator{
		model:  model,
		engine: engine,
		db:     db,
		logger: logger.WithField("model", model.String()),
	}
}

func (est *Estimator) Model() Model {
	return est.model
}

// Estimate returns the fraction of successful trials. trials must be
// positive. A nil seed runs unseeded, and such results are never cached.
func (est *Estimator) Estimate(p float64, k, trials int, seed *int64) (float64, error) {
	if trials <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNoTrials, trials)
	}
	trial, err := est.model.Trial(k)
	if err != nil {
		return 0, err
	}

	if seed == nil {
		base, err := RandomSeed()
		if err != nil {
			return 0, err
		}
		return est.run(p, k, trials, base, trial), nil
	}

	params := Params{Model: est.model, P: p, K: k, Trials: trials, Seed: *seed}
	if rate, ok := est.db.Get(params); ok {
		est.logger.WithFields(logrus.Fields{
			"params": params,
			"hash":   params.Hash(),
		}).Debug("Estimate served from cache")
		return rate, nil
	}
	rate := est.run(p, k, trials, *seed, trial)
	est.db.Add(params, rate)
	return rate, nil
}

func (est *Estimator) run(p float64, k, trials int, base int64, trial TrialFunc) float64 {
	successes := est.engine.Run(p, base, trials, trial)
	est.logger.WithFields(logrus.Fields{
		"p":         p,
		"k":         k,
		"trials":    trials,
		"successes": successes,
		"threads":   est.engine.Threads(),
	}).Debug("Estimate finished")
	return float64(successes) / float64(trials)
}
