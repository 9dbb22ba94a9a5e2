package app

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// ConsoleLogger writes human-readable lines through zerolog.
type ConsoleLogger struct{ log zerolog.Logger }

func NewConsoleLogger(w io.Writer) ConsoleLogger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	return ConsoleLogger{log: zerolog.New(out).With().Timestamp().Logger()}
}

func (l ConsoleLogger) Infof(component string, format string, args ...interface{}) {
	l.log.Info().Str("component", component).Msg(fmt.Sprintf(format, args...))
}

func (l ConsoleLogger) Errorf(component string, format string, args ...interface{}) {
	l.log.Error().Str("component", component).Msg(fmt.Sprintf(format, args...))
}
