package common

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger()
	l.Out = &buf
	l.ShowEmojis = false

	l.Info("hello %d", 1)
	l.Debug("hidden")
	l.Warn("careful")
	assert.Contains(t, buf.String(), "[INFO]  hello 1")
	assert.Contains(t, buf.String(), "[WARN]  careful")
	assert.NotContains(t, buf.String(), "hidden")

	buf.Reset()
	l.SetSilentMode(true)
	l.Info("quiet")
	l.Progress("quiet")
	l.Error("loud")
	assert.Equal(t, "[ERROR] loud\n", buf.String())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLogLevel("DEBUG"))
	assert.Equal(t, LogLevelWarn, ParseLogLevel("warning"))
	assert.Equal(t, LogLevelError, ParseLogLevel("error"))
	assert.Equal(t, LogLevelInfo, ParseLogLevel(""))
}

func TestFlagValidator(t *testing.T) {
	v := NewFlagValidator().
		Int("population", 1, 2, 100).
		Float("rate", 0.5, 0, 1).
		Choice("problem", "TSP", []string{"nqueens", "tsp"}).
		File("config", filepath.Join(t.TempDir(), "none.json"), false)

	require.Len(t, v.Errors(), 2)
	err := v.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-population must be between 2 and 100, got 1")
	assert.Contains(t, err.Error(), "-config file does not exist")

	var flagErr *FlagError
	require.True(t, errors.As(err, &flagErr))
	assert.Equal(t, "population", flagErr.Flag)

	assert.NoError(t, NewFlagValidator().File("config", "", false).Err())
	assert.Error(t, NewFlagValidator().File("config", "", true).Err())
	assert.Error(t, NewFlagValidator().Check(false, "workers", "must be non-negative").Err())
}

func TestCheckHelpAndVersion(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := RegisterCommonFlags(fs)
	require.NoError(t, fs.Parse([]string{"-version"}))

	var buf bytes.Buffer
	shown := CheckHelpAndVersion(&buf, "ga-search", fs, flags, NewUsageFormatter("ga-search", "test"))
	assert.True(t, shown)
	assert.Contains(t, buf.String(), "ga-search v"+ProjectVersion)
	assert.Contains(t, buf.String(), "Build: "+GetFullVersion())
	assert.True(t, IsDevBuild())
	assert.Contains(t, buf.String(), "[development build]")
}

func TestUsageFormatter_PrintUsage(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Int("size", 8, "Problem size")

	var buf bytes.Buffer
	NewUsageFormatter("GA Search", "test").
		AddExample("ga-search -size 4", "Four queens").
		AddEnvVar("GA_SIZE", "Problem size override").
		PrintUsage(&buf, fs)

	out := buf.String()
	assert.Contains(t, out, "# Four queens")
	assert.Contains(t, out, "-size")
	assert.Contains(t, out, "ENVIRONMENT:")
	assert.Contains(t, out, "GA_SIZE  Problem size override")
}

func TestSetupLogger(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := RegisterCommonFlags(fs)
	require.NoError(t, fs.Parse([]string{"-verbose", "-no-emojis", "-silent"}))

	l := NewLogger()
	SetupLogger(l, flags)
	assert.Equal(t, LogLevelDebug, l.Level)
	assert.False(t, l.ShowEmojis)
	assert.True(t, l.SilentMode)
}

func TestEnvLoader(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger()
	l.Out = &buf
	loader := NewEnvLoader(l)

	assert.NoError(t, loader.LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GA_COMMON_PROBE=yes\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("GA_COMMON_PROBE") })
	require.NoError(t, loader.LoadEnvFile(path))
	assert.Equal(t, "yes", os.Getenv("GA_COMMON_PROBE"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "12.5ms", FormatDuration(12500*time.Microsecond))
	assert.Equal(t, "1.5s", FormatDuration(1500*time.Millisecond))
	assert.Equal(t, "2.0m", FormatDuration(2*time.Minute))
	assert.Equal(t, "50.0%", FormatPercent(0.5, 1))
}
