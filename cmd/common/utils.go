package common

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LogLevel represents different logging levels
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// ParseLogLevel maps LOG_LEVEL values to a LogLevel, defaulting to info
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LogLevelError
	case "warn", "warning":
		return LogLevelWarn
	case "debug":
		return LogLevelDebug
	default:
		return LogLevelInfo
	}
}

// Logger prints leveled console lines for the CLI. Silent mode keeps only
// warnings and errors.
type Logger struct {
	Level      LogLevel
	ShowEmojis bool
	SilentMode bool
	Out        io.Writer
}

func NewLogger() *Logger {
	return &Logger{
		Level:      LogLevelInfo,
		ShowEmojis: true,
		Out:        os.Stdout,
	}
}

func (l *Logger) SetSilentMode(silent bool) {
	l.SilentMode = silent
}

// lineKind is the prefix and gating of one kind of console line
type lineKind struct {
	emoji, tag string
	level      LogLevel
	silenced   bool
}

var (
	infoLine     = lineKind{"ℹ️ ", "[INFO] ", LogLevelInfo, true}
	warnLine     = lineKind{"⚠️ ", "[WARN] ", LogLevelWarn, false}
	errorLine    = lineKind{"❌", "[ERROR]", LogLevelError, false}
	successLine  = lineKind{"✅", "[SUCCESS]", LogLevelError, true}
	debugLine    = lineKind{"🔍", "[DEBUG]", LogLevelDebug, false}
	progressLine = lineKind{"🔄", "[PROGRESS]", LogLevelInfo, true}
)

func (l *Logger) emit(kind lineKind, format string, args ...interface{}) {
	if l.Level < kind.level || (kind.silenced && l.SilentMode) {
		return
	}
	prefix := kind.tag
	if l.ShowEmojis {
		prefix = kind.emoji
	}
	fmt.Fprintf(l.Out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

func (l *Logger) rule(mark, plain, title, underline string, upper bool) {
	if l.SilentMode {
		return
	}
	if !l.ShowEmojis {
		mark = plain
	}
	if upper {
		title = strings.ToUpper(title)
	}
	fmt.Fprintf(l.Out, "\n%s %s\n%s\n", mark, title, strings.Repeat(underline, len(title)+5))
}

// Header prints the banner of a command
func (l *Logger) Header(title string) { l.rule("🎯", "***", title, "=", true) }

// Section starts a block of related output
func (l *Logger) Section(title string) { l.rule("📋", "---", title, "-", false) }

func (l *Logger) Info(format string, args ...interface{})     { l.emit(infoLine, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})     { l.emit(warnLine, format, args...) }
func (l *Logger) Error(format string, args ...interface{})    { l.emit(errorLine, format, args...) }
func (l *Logger) Success(format string, args ...interface{})  { l.emit(successLine, format, args...) }
func (l *Logger) Debug(format string, args ...interface{})    { l.emit(debugLine, format, args...) }
func (l *Logger) Progress(format string, args ...interface{}) { l.emit(progressLine, format, args...) }

// Quiet prints an indented detail line outside silent mode
func (l *Logger) Quiet(format string, args ...interface{}) {
	if !l.SilentMode {
		fmt.Fprintf(l.Out, "   %s\n", fmt.Sprintf(format, args...))
	}
}

// FormatDuration formats a duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.1fm", d.Minutes())
	}
	return fmt.Sprintf("%.1fh", d.Hours())
}

// FormatPercent formats a ratio as a percentage
func FormatPercent(value float64, precision int) string {
	return fmt.Sprintf("%.*f%%", precision, value*100)
}

// EnvLoader loads .env files into the process environment
type EnvLoader struct {
	logger *Logger
}

func NewEnvLoader(logger *Logger) *EnvLoader {
	return &EnvLoader{logger: logger}
}

// LoadEnvFile loads path (default .env); a missing file is not an error
func (e *EnvLoader) LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		e.logger.Debug("No %s, using the process environment", path)
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	e.logger.Debug("Environment loaded from %s", path)
	return nil
}
