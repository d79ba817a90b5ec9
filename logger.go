package main

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

const (
	c_logMaxSizeMB  = 10
	c_logMaxBackups = 3
	c_logMaxAgeDays = 28
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the process logger. The returned closer releases the log
// file, if any.
func newLogger(cfg *Config) (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.LogFile == "" {
		logger.SetOutput(os.Stderr)
		return logger, nopCloser{}, nil
	}
	file := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    c_logMaxSizeMB,
		MaxBackups: c_logMaxBackups,
		MaxAge:     c_logMaxAgeDays,
	}
	logger.SetOutput(file)
	return logger, file, nil
}
