package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/shreekarashastry/doublespend/chart"
	"github.com/shreekarashastry/doublespend/simulation"
)

const (
	modeSample = "sample"
	modeBatch  = "batch"
)

var (
	ErrInvalidMode = errors.New("mode must be sample or batch")
	ErrInvalidKMax = errors.New("kmax must be zero or at least 1")
	ErrNoOutput    = errors.New("chart output path is required in sample mode")
)

// Config holds the command line settings of a run
type Config struct {
	Mode    string
	Model   string
	P       float64
	Steps   int
	K       int
	Trials  int
	Seed    *int64 // nil draws a random seed
	Threads int

	// Sample mode output
	Out string

	// Batch mode output
	KMax int
	JSON bool

	LogLevel string
	LogFile  string // empty logs to stderr
}

// DefaultConfig returns the settings used when no flag is given
func DefaultConfig() *Config {
	return &Config{
		Mode:     modeSample,
		Model:    simulation.Didactic.String(),
		P:        0.55,
		Steps:    200,
		K:        6,
		Trials:   2000,
		Threads:  1,
		Out:      chart.DefaultPath,
		LogLevel: logrus.InfoLevel.String(),
	}
}

// Validate rejects settings the command line parser cannot express as types.
func (cfg *Config) Validate() error {
	if cfg.Mode != modeSample && cfg.Mode != modeBatch {
		return fmt.Errorf("%w: %q", ErrInvalidMode, cfg.Mode)
	}
	if _, err := simulation.ParseModel(cfg.Model); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.KMax < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidKMax, cfg.KMax)
	}
	if cfg.Mode == modeSample && cfg.Out == "" {
		return ErrNoOutput
	}
	return nil
}

// seedValue is an int64 flag that records whether it was set at all.
type seedValue struct {
	seed **int64
}

func (v seedValue) String() string {
	if v.seed == nil || *v.seed == nil {
		return ""
	}
	return strconv.FormatInt(**v.seed, 10)
}

func (v seedValue) Set(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*v.seed = &n
	return nil
}

// parseFlags builds a Config from args. Usage and parse errors are written to
// output.
func parseFlags(args []string, output io.Writer) (*Config, error) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("doublespend", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "Run mode: sample or batch")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "Estimator used in batch mode: didactic or realistic")
	fs.Float64Var(&cfg.P, "p", cfg.P, "Attacker hash-power fraction")
	fs.IntVar(&cfg.Steps, "steps", cfg.Steps, "Steps of the sample run")
	fs.IntVar(&cfg.K, "k", cfg.K, "Confirmation depth")
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "Independent trials in batch mode")
	fs.Var(seedValue{&cfg.Seed}, "seed", "Random seed (random when unset)")
	fs.IntVar(&cfg.Threads, "threads", cfg.Threads, "Trial threads in batch mode, 0 for one per CPU")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "Chart written in sample mode")
	fs.IntVar(&cfg.KMax, "kmax", cfg.KMax, "Also estimate every depth from 1 to kmax in batch mode")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "Print the batch report as JSON")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(output, "invalid arguments: %v\n", err)
		fs.Usage()
		return nil, err
	}
	return cfg, nil
}
