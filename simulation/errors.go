package simulation

import "errors"

var (
	ErrNoTrials     = errors.New("trials must be positive")
	ErrUnknownModel = errors.New("unknown estimator model")
)
