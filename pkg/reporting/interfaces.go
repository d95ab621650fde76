package reporting

import (
	"github.com/ducminhle1904/permutation-ga/internal/benchmark"
	"github.com/ducminhle1904/permutation-ga/pkg/genetic"
)

// Package reporting provides output generation for GA search runs

// RunReport is everything a reporter needs to describe one run
type RunReport struct {
	Problem string
	Policy  string
	Params  genetic.SearchParams
	Result  *benchmark.Result
	// Config is the effective configuration, written as-is to the config outputs
	Config interface{}
}

// ConsoleReporter defines interface for console output
type ConsoleReporter interface {
	OutputTrials(report *RunReport)
	OutputSummary(report *RunReport)
	PrintConfig(config interface{})
}

// FileReporter defines interface for file output
type FileReporter interface {
	WriteTrialsCSV(report *RunReport, path string) error
	WriteTrialsXLSX(report *RunReport, path string) error
	WriteSummaryJSON(report *RunReport, path string) error
	WriteConfigJSON(config interface{}, path string) error
}

// PathManager defines interface for output path management
type PathManager interface {
	GetDefaultOutputDir(problem string, size int) string
	EnsureDirectoryExists(path string) error
}

// Reporter combines all reporting interfaces
type Reporter interface {
	ConsoleReporter
	FileReporter
	PathManager
}

// ExcelStyles holds Excel formatting styles
type ExcelStyles struct {
	HeaderStyle   int
	BaseStyle     int
	NumberStyle   int
	PercentStyle  int
	SolvedStyle   int
	UnsolvedStyle int
	FailedStyle   int
	SummaryStyle  int
}

// ReportingConfig holds configuration for reporting
type ReportingConfig struct {
	EnableConsole   bool
	EnableFiles     bool
	OutputDirectory string
	ExcelEnabled    bool
	CSVEnabled      bool
	JSONEnabled     bool
}
