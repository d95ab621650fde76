package reporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultCSVReporter implements CSV output functionality
type DefaultCSVReporter struct{}

// NewDefaultCSVReporter creates a new CSV reporter
func NewDefaultCSVReporter() *DefaultCSVReporter {
	return &DefaultCSVReporter{}
}

// WriteTrialsCSV writes one row per trial followed by a summary row
func (r *DefaultCSVReporter) WriteTrialsCSV(report *RunReport, path string) error {
	if report == nil || report.Result == nil {
		return fmt.Errorf("no results to write")
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	// An .xlsx path is delegated to the Excel writer
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return WriteTrialsXLSX(report, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{"Trial", "ID", "Seed", "Cost", "Solved", "Duration_ms", "Solution", "Error"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, t := range report.Result.Trials {
		cost := strconv.FormatFloat(t.Cost, 'f', -1, 64)
		errText := ""
		if t.Err != nil {
			cost = ""
			errText = t.Err.Error()
		}
		row := []string{
			strconv.Itoa(t.Index),
			t.ID,
			strconv.FormatInt(t.Seed, 10),
			cost,
			strconv.FormatBool(t.Solved),
			fmt.Sprintf("%.3f", float64(t.Duration.Microseconds())/1000),
			formatSolution(t.Solution),
			errText,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	s := report.Result.Summary
	summary := fmt.Sprintf("SUMMARY: solved=%d/%d; success_rate=%.2f%%; mean_cost=%.4f; min_cost=%.4f; max_cost=%.4f; failed=%d",
		s.Solved, s.Completed, s.SuccessRate*100, s.MeanCost, s.MinCost, s.MaxCost, s.Failed)
	summaryRow := make([]string, len(header))
	summaryRow[len(header)-1] = summary
	if err := w.Write(summaryRow); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

// Package-level convenience function
func WriteTrialsCSV(report *RunReport, path string) error {
	return NewDefaultCSVReporter().WriteTrialsCSV(report, path)
}
