package logger

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	charm "github.com/charmbracelet/log"
)

// ErrInvalidLogLevel is returned by ParseLogLevel for unknown level names.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Level is the numeric severity used by the underlying charm logger.
type Level = charm.Level

const (
	// TraceLevel sits one step below charm's Debug level.
	TraceLevel Level = charm.DebugLevel - 1
	DebugLevel Level = charm.DebugLevel
	InfoLevel  Level = charm.InfoLevel
	WarnLevel  Level = charm.WarnLevel
	ErrorLevel Level = charm.ErrorLevel
	// OffLevel is above every level charm emits.
	OffLevel Level = Level(math.MaxInt32)
)

// LogLevel is the level name accepted on the command line and in CARB_LOGS_LEVEL.
type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

var logLevels = []LogLevel{LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelOff}

// ParseLogLevel maps a level name to a LogLevel. Matching is
// case-insensitive and the empty string means Info.
func ParseLogLevel(logLevel string) (LogLevel, error) {
	if logLevel == "" {
		return LogLevelInfo, nil
	}
	for _, l := range logLevels {
		if strings.EqualFold(logLevel, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: '%s'. Supported log levels are Trace, Debug, Info, Warning, Off", ErrInvalidLogLevel, logLevel)
}

// Level converts the name into the charm severity.
func (l LogLevel) Level() Level {
	switch l {
	case LogLevelTrace:
		return TraceLevel
	case LogLevelDebug:
		return DebugLevel
	case LogLevelWarning:
		return WarnLevel
	case LogLevelOff:
		return OffLevel
	default:
		return InfoLevel
	}
}

// Logger is the carb logger. It embeds *charm.Logger so Debug, Info, Warn,
// Error and With are available directly; Trace is added on top.
type Logger struct {
	*charm.Logger
}

// NewLogger creates a Logger writing to w with carb's level styles.
func NewLogger(w io.Writer) *Logger {
	l := charm.New(w)
	l.SetStyles(styles())
	return &Logger{Logger: l}
}

// New creates a Logger writing to stderr.
func New() *Logger {
	return NewLogger(os.Stderr)
}

// Trace logs at TraceLevel.
func (l *Logger) Trace(msg any, keyvals ...any) {
	l.Log(TraceLevel, msg, keyvals...)
}

// With returns a child logger carrying keyvals on every entry.
func (l *Logger) With(keyvals ...any) *Logger {
	return &Logger{Logger: l.Logger.With(keyvals...)}
}

// SetLogLevel applies a named level.
func (l *Logger) SetLogLevel(level LogLevel) {
	l.SetLevel(level.Level())
}

// GetLevelString returns the lowercase name of the current level.
func (l *Logger) GetLevelString() string {
	switch lvl := l.GetLevel(); {
	case lvl == TraceLevel:
		return "trace"
	case lvl >= OffLevel:
		return "off"
	default:
		return lvl.String()
	}
}

func styles() *charm.Styles {
	s := charm.DefaultStyles()
	s.Levels[TraceLevel] = lipgloss.NewStyle().
		SetString("TRCE").
		Bold(true).
		MaxWidth(4).
		Foreground(lipgloss.Color("61"))
	s.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	s.Keys["package"] = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	return s
}
