package common

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CommonFlags contains flags that are shared across commands
type CommonFlags struct {
	// Environment and configuration
	EnvFile     *string
	ConsoleOnly *bool

	// Logging and output
	Verbose  *bool
	Silent   *bool
	NoEmojis *bool

	// Help and version
	Version *bool
	Help    *bool
}

// RegisterCommonFlags registers common flags on fs
func RegisterCommonFlags(fs *flag.FlagSet) *CommonFlags {
	return &CommonFlags{
		EnvFile:     fs.String("env", ".env", "Environment file path"),
		ConsoleOnly: fs.Bool("console-only", false, "Console output only (no file output)"),

		Verbose:  fs.Bool("verbose", false, "Enable verbose output"),
		Silent:   fs.Bool("silent", false, "Enable silent mode (minimal output)"),
		NoEmojis: fs.Bool("no-emojis", false, "Disable emoji output"),

		Version: fs.Bool("version", false, "Show version information"),
		Help:    fs.Bool("help", false, "Show help information"),
	}
}

// FlagError describes one rejected flag value
type FlagError struct {
	Flag    string
	Message string
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("-%s %s", e.Flag, e.Message)
}

// FlagValidator collects FlagErrors across chained checks
type FlagValidator struct {
	errs []error
}

func NewFlagValidator() *FlagValidator {
	return &FlagValidator{}
}

// Check records a FlagError for name unless ok holds
func (v *FlagValidator) Check(ok bool, name, format string, args ...interface{}) *FlagValidator {
	if !ok {
		v.errs = append(v.errs, &FlagError{Flag: name, Message: fmt.Sprintf(format, args...)})
	}
	return v
}

// Float requires lo <= value <= hi
func (v *FlagValidator) Float(name string, value, lo, hi float64) *FlagValidator {
	return v.Check(value >= lo && value <= hi, name, "must be between %g and %g, got %g", lo, hi, value)
}

// Int requires lo <= value <= hi
func (v *FlagValidator) Int(name string, value, lo, hi int) *FlagValidator {
	return v.Check(value >= lo && value <= hi, name, "must be between %d and %d, got %d", lo, hi, value)
}

// Choice requires value to match one of choices, ignoring case
func (v *FlagValidator) Choice(name, value string, choices []string) *FlagValidator {
	for _, choice := range choices {
		if strings.EqualFold(value, choice) {
			return v
		}
	}
	return v.Check(false, name, "must be one of [%s], got %q", strings.Join(choices, ", "), value)
}

// File requires path to exist; an empty path only fails when required
func (v *FlagValidator) File(name, path string, required bool) *FlagValidator {
	if path == "" {
		return v.Check(!required, name, "is required")
	}
	_, err := os.Stat(path)
	return v.Check(!errors.Is(err, os.ErrNotExist), name, "file does not exist: %s", path)
}

// Errors returns the recorded FlagErrors in check order
func (v *FlagValidator) Errors() []error {
	return v.errs
}

// Err joins every recorded FlagError, or returns nil
func (v *FlagValidator) Err() error {
	return errors.Join(v.errs...)
}

// UsageFormatter provides utilities for formatting flag usage
type UsageFormatter struct {
	AppName        string
	AppDescription string
	Examples       []UsageExample
	EnvVars        [][2]string
}

// UsageExample represents a usage example
type UsageExample struct {
	Command     string
	Description string
}

// NewUsageFormatter creates a new usage formatter
func NewUsageFormatter(appName, description string) *UsageFormatter {
	return &UsageFormatter{
		AppName:        appName,
		AppDescription: description,
		Examples:       make([]UsageExample, 0),
	}
}

// AddExample adds a usage example
func (u *UsageFormatter) AddExample(command, description string) *UsageFormatter {
	u.Examples = append(u.Examples, UsageExample{
		Command:     command,
		Description: description,
	})
	return u
}

// AddEnvVar documents an environment variable the command reads
func (u *UsageFormatter) AddEnvVar(name, description string) *UsageFormatter {
	u.EnvVars = append(u.EnvVars, [2]string{name, description})
	return u
}

// PrintUsage prints formatted usage information for fs
func (u *UsageFormatter) PrintUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "%s - %s\n\n", u.AppName, u.AppDescription)

	fmt.Fprintf(w, "USAGE:\n")
	fmt.Fprintf(w, "  %s [OPTIONS]\n\n", filepath.Base(os.Args[0]))

	if len(u.Examples) > 0 {
		fmt.Fprintf(w, "EXAMPLES:\n")
		for _, example := range u.Examples {
			fmt.Fprintf(w, "  # %s\n", example.Description)
			fmt.Fprintf(w, "  %s\n\n", example.Command)
		}
	}

	fmt.Fprintf(w, "OPTIONS:\n")
	fs.SetOutput(w)
	fs.PrintDefaults()

	if len(u.EnvVars) > 0 {
		width := 0
		for _, env := range u.EnvVars {
			width = max(width, len(env[0]))
		}
		fmt.Fprintf(w, "\nENVIRONMENT:\n")
		for _, env := range u.EnvVars {
			fmt.Fprintf(w, "  %-*s  %s\n", width, env[0], env[1])
		}
	}
}

// CheckHelpAndVersion handles the help and version flags; it reports whether one was shown
func CheckHelpAndVersion(w io.Writer, appName string, fs *flag.FlagSet, commonFlags *CommonFlags, formatter *UsageFormatter) bool {
	if *commonFlags.Version {
		PrintVersion(w, appName)
		return true
	}

	if *commonFlags.Help {
		formatter.PrintUsage(w, fs)
		return true
	}

	return false
}

// SetupLogger configures logger based on common flags
func SetupLogger(logger *Logger, commonFlags *CommonFlags) {
	if *commonFlags.Silent {
		logger.SetSilentMode(true)
	}

	if *commonFlags.Verbose {
		logger.Level = LogLevelDebug
	}

	if *commonFlags.NoEmojis {
		logger.ShowEmojis = false
	}
}
