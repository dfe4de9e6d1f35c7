package renderer

import (
	"fmt"

	"github.com/df07/go-path-tracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// silentLogger discards everything
type silentLogger struct{}

func (silentLogger) Printf(format string, args ...interface{}) {}

// NewSilentLogger returns a logger that drops all output
func NewSilentLogger() core.Logger {
	return silentLogger{}
}
