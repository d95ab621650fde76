package reporting

import (
	"fmt"
	"io"
	"path/filepath"
)

// Output file names inside a run directory
const (
	TrialsXLSXFile  = "trials.xlsx"
	TrialsCSVFile   = "trials.csv"
	SummaryJSONFile = "summary.json"
	ConfigJSONFile  = "config.json"
)

// DefaultReporter implements the complete Reporter interface
type DefaultReporter struct {
	console *DefaultConsoleReporter
	csv     *DefaultCSVReporter
	excel   *DefaultExcelReporter
	paths   *DefaultPathManager
}

// NewDefaultReporter creates a new default reporter with all functionality
func NewDefaultReporter() *DefaultReporter {
	return &DefaultReporter{
		console: NewDefaultConsoleReporter(),
		csv:     NewDefaultCSVReporter(),
		excel:   NewDefaultExcelReporter(),
		paths:   NewDefaultPathManager(),
	}
}

// NewReporter creates a reporter printing to w with results under root
func NewReporter(w io.Writer, root string) *DefaultReporter {
	r := NewDefaultReporter()
	r.console = NewConsoleReporter(w)
	r.paths = NewPathManager(root)
	return r
}

// Console output methods
func (r *DefaultReporter) OutputTrials(report *RunReport) {
	r.console.OutputTrials(report)
}

func (r *DefaultReporter) OutputSummary(report *RunReport) {
	r.console.OutputSummary(report)
}

func (r *DefaultReporter) PrintConfig(config interface{}) {
	r.console.PrintConfig(config)
}

// File output methods
func (r *DefaultReporter) WriteTrialsCSV(report *RunReport, path string) error {
	return r.csv.WriteTrialsCSV(report, path)
}

func (r *DefaultReporter) WriteTrialsXLSX(report *RunReport, path string) error {
	return r.excel.WriteTrialsXLSX(report, path)
}

func (r *DefaultReporter) WriteSummaryJSON(report *RunReport, path string) error {
	return WriteSummaryJSON(report, path)
}

func (r *DefaultReporter) WriteConfigJSON(config interface{}, path string) error {
	return WriteConfigJSON(config, path)
}

// Path management methods
func (r *DefaultReporter) GetDefaultOutputDir(problem string, size int) string {
	return r.paths.GetDefaultOutputDir(problem, size)
}

func (r *DefaultReporter) EnsureDirectoryExists(path string) error {
	return r.paths.EnsureDirectoryExists(path)
}

// WriteAll writes every enabled file output into dir and returns the written paths
func (r *DefaultReporter) WriteAll(report *RunReport, dir string, cfg ReportingConfig) ([]string, error) {
	var written []string
	write := func(name string, fn func(string) error) error {
		path := filepath.Join(dir, name)
		if err := fn(path); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		written = append(written, path)
		return nil
	}

	if cfg.ExcelEnabled {
		if err := write(TrialsXLSXFile, func(p string) error { return r.WriteTrialsXLSX(report, p) }); err != nil {
			return written, err
		}
	}
	if cfg.CSVEnabled {
		if err := write(TrialsCSVFile, func(p string) error { return r.WriteTrialsCSV(report, p) }); err != nil {
			return written, err
		}
	}
	if cfg.JSONEnabled {
		if err := write(SummaryJSONFile, func(p string) error { return r.WriteSummaryJSON(report, p) }); err != nil {
			return written, err
		}
		if report.Config != nil {
			if err := write(ConfigJSONFile, func(p string) error { return r.WriteConfigJSON(report.Config, p) }); err != nil {
				return written, err
			}
		}
	}
	return written, nil
}

// Ensure DefaultReporter implements Reporter interface
var _ Reporter = (*DefaultReporter)(nil)
