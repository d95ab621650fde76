package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	gaerrors "github.com/ducminhle1904/permutation-ga/internal/errors"
	"github.com/ducminhle1904/permutation-ga/pkg/genetic"
)

// Logger represents a file logger for search sessions
type Logger struct {
	problem  string
	policy   string
	logFile  *os.File
	logger   *log.Logger
	mu       sync.Mutex
	logDir   string
	filename string
	// every n-th generation is written; 0 disables generation lines
	generationEvery int
}

// LogLevel represents different types of log entries
type LogLevel string

const (
	LogLevelInfo    LogLevel = "INFO"
	LogLevelWarning LogLevel = "WARN"
	LogLevelError   LogLevel = "ERROR"
	LogLevelStatus  LogLevel = "STATUS"
	LogLevelResult  LogLevel = "RESULT"
)

// NewLogger creates a new file logger for the specified problem and policy
func NewLogger(logDir, problem, policy string) (*Logger, error) {
	if logDir == "" {
		logDir = "logs"
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, gaerrors.NewIOError("logger", "create log directory", err)
	}

	timestamp := time.Now().Format("2006-01-02")
	filename := fmt.Sprintf("%s_%s_%s.log", sanitize(problem), sanitize(policy), timestamp)
	logPath := filepath.Join(logDir, filename)

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, gaerrors.NewIOError("logger", "open log file", err)
	}

	l := &Logger{
		problem:         problem,
		policy:          policy,
		logFile:         file,
		logger:          log.New(file, "", 0),
		logDir:          logDir,
		filename:        filename,
		generationEvery: 1,
	}

	l.writeSessionHeader()

	return l, nil
}

// sanitize keeps policy names like "tournament-swap(p=0.7)" usable as file names
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', '=', '/', '\\', ' ', ':':
			return '_'
		}
		return r
	}, name)
}

// SetGenerationInterval writes one generation line every n generations
func (l *Logger) SetGenerationInterval(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.generationEvery = n
}

const (
	rule       = "================================================================================"
	timeLayout = "2006-01-02 15:04:05"
)

// banner frames title and lines between rules
func banner(title string, lines ...string) string {
	var b strings.Builder
	b.WriteString("\n" + rule + "\n" + title + "\n" + rule + "\n")
	for _, line := range lines {
		b.WriteString(line + "\n")
	}
	b.WriteString(rule + "\n")
	return b.String()
}

func (l *Logger) writeSessionHeader() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logger.Print(banner("🧬 GA SEARCH SESSION STARTED",
		fmt.Sprintf("Problem: %s | Policy: %s", l.problem, l.policy),
		"Started: "+time.Now().Format(timeLayout),
		"Log File: "+l.filename,
	))
}

// Log writes a formatted log entry with the specified level
func (l *Logger) Log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logger.Printf("[%s] [%s] %s\n", time.Now().Format(timeLayout), level, fmt.Sprintf(format, args...))
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(LogLevelInfo, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.Log(LogLevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(LogLevelError, format, args...)
}

// Status logs progress information
func (l *Logger) Status(format string, args ...interface{}) {
	l.Log(LogLevelStatus, format, args...)
}

// Result logs a search outcome
func (l *Logger) Result(format string, args ...interface{}) {
	l.Log(LogLevelResult, format, args...)
}

// LogSearchStart logs the parameters of a search
func (l *Logger) LogSearchStart(params genetic.SearchParams, trials int, seed int64) {
	l.Info("Search started - population: %d, generations: %d, fitness: %s, elitism: %t, trials: %d, seed: %d",
		params.PopulationSize, params.Generations, params.FitnessMode, params.Elitism, trials, seed)
}

// OnGeneration implements genetic.Observer
func (l *Logger) OnGeneration(stats genetic.GenerationStats) {
	l.mu.Lock()
	every := l.generationEvery
	l.mu.Unlock()
	if every <= 0 || stats.Generation%every != 0 {
		return
	}
	l.Status("gen %d | size %d | best %.4f | mean %.4f | worst %.4f",
		stats.Generation, stats.PopulationSize, stats.BestCost, stats.MeanCost, stats.WorstCost)
}

// LogTrial logs one finished trial
func (l *Logger) LogTrial(index int, seed int64, cost float64, solved bool, duration time.Duration) {
	l.Result("trial %d (seed %d) - cost: %.4f, solved: %t, duration: %s", index, seed, cost, solved, duration)
}

// LogSummary writes the aggregate result block of a run
func (l *Logger) LogSummary(trials, solved int, meanCost, minCost, maxCost float64, elapsed time.Duration) {
	rate := 0.0
	if trials > 0 {
		rate = float64(solved) / float64(trials) * 100
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Print(banner(fmt.Sprintf("[%s] [%s] SEARCH SUMMARY", time.Now().Format(timeLayout), LogLevelResult),
		fmt.Sprintf("🎯 Solved: %d/%d (%.1f%%)", solved, trials, rate),
		fmt.Sprintf("📊 Cost - mean: %.4f | min: %.4f | max: %.4f", meanCost, minCost, maxCost),
		"⏱️  Elapsed: "+elapsed.Round(time.Millisecond).String(),
	))
}

// LogError logs error with context
func (l *Logger) LogError(context string, err error) {
	l.Error("%s: %v", context, err)
}

// LogWarning logs a formatted warning prefixed with context
func (l *Logger) LogWarning(context, format string, args ...interface{}) {
	l.Warning("%s: %s", context, fmt.Sprintf(format, args...))
}

// Close writes the session footer and closes the file; later calls are no-ops
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile == nil {
		return nil
	}
	l.logger.Print(banner("🛑 GA SEARCH SESSION ENDED", "Ended: "+time.Now().Format(timeLayout)))
	err := l.logFile.Close()
	l.logFile = nil
	return err
}

// GetLogPath returns the current log file path
func (l *Logger) GetLogPath() string {
	return filepath.Join(l.logDir, l.filename)
}
