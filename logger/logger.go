package logger

import (
	"go.uber.org/zap"
)

var log *zap.Logger

// Init builds the process-wide logger. Call once from main before
// anything that logs.
func Init() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	log = l
	return nil
}

// L returns the process logger, falling back to a no-op logger so
// tests don't have to call Init.
func L() *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return log
}
