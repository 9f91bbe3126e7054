package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is a small printf-style facade over zerolog with one sink per level.
type Logger struct {
	info  *zerolog.Logger
	warn  *zerolog.Logger
	error *zerolog.Logger
}

// New returns a JSON logger writing to stderr.
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewConsole returns a human-readable logger, used when APP_ENV is development.
func NewConsole() *Logger {
	return NewWithWriter(zerolog.ConsoleWriter{Out: os.Stderr})
}

func NewWithWriter(w io.Writer) *Logger {
	base := zerolog.New(w).With().Timestamp().Logger()

	info := base.Level(zerolog.InfoLevel)
	warn := base.Level(zerolog.WarnLevel)
	errLog := base.Level(zerolog.ErrorLevel)

	return &Logger{
		info:  &info,
		warn:  &warn,
		error: &errLog,
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.info.Info().Msgf(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.warn.Warn().Msgf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.error.Error().Msgf(format, args...)
}
