package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"shade/internal/config"
)

//go:generate mockgen -source=logger.go -destination=logger_mock.go -package=logger

// Logger configuration constants
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
	TraceLevel = "trace"

	ConsoleFormat = "console"
	JSONFormat    = "json"

	TimeFormat = "15:04:05.000"

	componentField = "component"
)

// Logger interface for application logging
type Logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
	WithComponent(name string) Logger
}

// AppLogger wraps a zerolog logger
type AppLogger struct {
	log zerolog.Logger
}

// NewLogger creates a logger writing to stderr, stdout is reserved for rendered stylesheets
func NewLogger(cfg *config.Config) Logger {
	return NewLoggerWithOutput(cfg, nil)
}

// NewLoggerWithOutput creates a logger with a custom output writer
func NewLoggerWithOutput(cfg *config.Config, out io.Writer) Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339

	level := strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	format := strings.ToLower(strings.TrimSpace(cfg.Logging.Format))

	var output io.Writer

	switch {
	case out != nil:
		output = out
	case format == JSONFormat:
		output = os.Stderr
	default:
		output = newConsoleWriter(os.Stderr)
	}

	log := zerolog.
		New(output).
		Level(getLogLevel(level)).
		With().
		Timestamp().
		Str("version", config.Version).
		Logger()

	return &AppLogger{log: log}
}

// Debug returns a debug level event
func (l *AppLogger) Debug() *zerolog.Event {
	return l.log.Debug()
}

// Info returns an info level event
func (l *AppLogger) Info() *zerolog.Event {
	return l.log.Info()
}

// Warn returns a warn level event
func (l *AppLogger) Warn() *zerolog.Event {
	return l.log.Warn()
}

// Error returns an error level event
func (l *AppLogger) Error() *zerolog.Event {
	return l.log.Error()
}

// WithComponent tags every event with the component name
func (l *AppLogger) WithComponent(name string) Logger {
	return &AppLogger{
		log: l.log.With().Str(componentField, name).Logger(),
	}
}

func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: TimeFormat,
		FieldsExclude: []string{
			"version",
		},
		FormatFieldName: func(i interface{}) string {
			if s, ok := i.(string); ok && s == componentField {
				return ""
			}

			return fmt.Sprintf("%s=", i)
		},
		FormatPrepare: func(m map[string]interface{}) error {
			if component, ok := m[componentField].(string); ok {
				m[componentField] = fmt.Sprintf("[%s]", component)
			}

			return nil
		},
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			componentField,
			zerolog.MessageFieldName,
		},
	}
}

func getLogLevel(level string) zerolog.Level {
	switch level {
	case TraceLevel:
		return zerolog.TraceLevel
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
