package util

import (
	"go.uber.org/zap"
)

// NewLogger builds the process-wide zap logger. Debug mode switches to the
// human-readable development encoder.
func NewLogger(debug bool) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return l
}
