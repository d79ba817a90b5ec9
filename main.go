package main

import (
	"errors"
	"flag"
	"io"
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit status. The log
// file is closed before returning, whatever the outcome.
func execute(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return 2
	}
	defer closer.Close()

	if err := run(cfg, logger, stdout); err != nil {
		logger.WithError(err).Error("Simulation failed")
		return 1
	}
	return 0
}
