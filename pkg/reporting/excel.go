package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"
)

const (
	trialsSheet  = "Trials"
	summarySheet = "Summary"
	configSheet  = "Config"
)

// DefaultExcelReporter implements Excel output functionality
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

// WriteTrialsXLSX writes the Trials, Summary and Config sheets to path
func (r *DefaultExcelReporter) WriteTrialsXLSX(report *RunReport, path string) error {
	if report == nil || report.Result == nil {
		return fmt.Errorf("no results to write")
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	fx.SetSheetName(fx.GetSheetName(0), trialsSheet)
	if _, err := fx.NewSheet(summarySheet); err != nil {
		return err
	}
	if _, err := fx.NewSheet(configSheet); err != nil {
		return err
	}

	styles, err := r.createExcelStyles(fx)
	if err != nil {
		return err
	}

	if err := r.writeTrialsSheet(fx, report, styles); err != nil {
		return err
	}
	if err := r.writeSummarySheet(fx, report, styles); err != nil {
		return err
	}
	if err := r.writeConfigSheet(fx, report, styles); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func (r *DefaultExcelReporter) createExcelStyles(fx *excelize.File) (ExcelStyles, error) {
	var styles ExcelStyles
	var err error

	border := []excelize.Border{
		{Type: "left", Color: "E0E0E0", Style: 1},
		{Type: "right", Color: "E0E0E0", Style: 1},
		{Type: "bottom", Color: "E0E0E0", Style: 1},
	}

	// Header style - dark background with white text
	styles.HeaderStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	styles.BaseStyle, err = fx.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return styles, err
	}

	styles.NumberStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt:    4, // #,##0.00
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    border,
	})
	if err != nil {
		return styles, err
	}

	styles.PercentStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt:    10, // 0.00%
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    border,
	})
	if err != nil {
		return styles, err
	}

	styles.SolvedStyle, err = fx.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E6FFE6"}, Pattern: 1},
		Font:   &excelize.Font{Color: "008000", Bold: true},
		Border: border,
	})
	if err != nil {
		return styles, err
	}

	styles.UnsolvedStyle, err = fx.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFF8E1"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return styles, err
	}

	styles.FailedStyle, err = fx.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFE6E6"}, Pattern: 1},
		Font:   &excelize.Font{Color: "FF0000"},
		Border: border,
	})
	if err != nil {
		return styles, err
	}

	styles.SummaryStyle, err = fx.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"F0F0F0"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return styles, err
	}

	return styles, nil
}

func (r *DefaultExcelReporter) writeTrialsSheet(fx *excelize.File, report *RunReport, styles ExcelStyles) error {
	headers := []string{"Trial", "ID", "Seed", "Cost", "Solved", "Duration_ms", "Solution", "Error"}
	if err := writeHeaderRow(fx, trialsSheet, headers, styles.HeaderStyle); err != nil {
		return err
	}

	for i, trial := range report.Result.Trials {
		row := i + 2
		status := styles.UnsolvedStyle
		errText := ""
		cost := interface{}(trial.Cost)
		switch {
		case trial.Err != nil:
			status = styles.FailedStyle
			errText = trial.Err.Error()
			cost = ""
		case trial.Solved:
			status = styles.SolvedStyle
		}

		values := []interface{}{
			trial.Index,
			trial.ID,
			trial.Seed,
			cost,
			trial.Solved,
			float64(trial.Duration.Microseconds()) / 1000,
			formatSolution(trial.Solution),
			errText,
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := fx.SetSheetRow(trialsSheet, cell, &values); err != nil {
			return err
		}

		last, _ := excelize.CoordinatesToCellName(len(headers), row)
		if err := fx.SetCellStyle(trialsSheet, cell, last, status); err != nil {
			return err
		}
	}

	widths := map[string]float64{"A": 8, "B": 38, "C": 14, "D": 12, "E": 9, "F": 13, "G": 50, "H": 40}
	for col, w := range widths {
		if err := fx.SetColWidth(trialsSheet, col, col, w); err != nil {
			return err
		}
	}
	return fx.SetPanes(trialsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func (r *DefaultExcelReporter) writeSummarySheet(fx *excelize.File, report *RunReport, styles ExcelStyles) error {
	s := report.Result.Summary
	if err := writeHeaderRow(fx, summarySheet, []string{"Metric", "Value"}, styles.HeaderStyle); err != nil {
		return err
	}

	rows := []struct {
		label string
		value interface{}
		style int
	}{
		{"Run ID", report.Result.RunID, styles.BaseStyle},
		{"Problem", report.Problem, styles.BaseStyle},
		{"Policy", report.Policy, styles.BaseStyle},
		{"Population", report.Params.PopulationSize, styles.BaseStyle},
		{"Generations", report.Params.Generations, styles.BaseStyle},
		{"Fitness", report.Params.FitnessMode.String(), styles.BaseStyle},
		{"Elitism", report.Params.Elitism, styles.BaseStyle},
		{"Trials", s.Trials, styles.BaseStyle},
		{"Completed", s.Completed, styles.BaseStyle},
		{"Failed", s.Failed, styles.BaseStyle},
		{"Solved", s.Solved, styles.BaseStyle},
		{"Success Rate", s.SuccessRate, styles.PercentStyle},
		{"Min Cost", s.MinCost, styles.NumberStyle},
		{"Mean Cost", s.MeanCost, styles.NumberStyle},
		{"Max Cost", s.MaxCost, styles.NumberStyle},
		{"Mean Duration (ms)", float64(s.MeanDuration.Microseconds()) / 1000, styles.NumberStyle},
		{"Elapsed (ms)", float64(s.Elapsed.Microseconds()) / 1000, styles.NumberStyle},
	}
	if best := report.Result.Best(); best != nil {
		rows = append(rows, struct {
			label string
			value interface{}
			style int
		}{"Best Solution", formatSolution(best.Solution), styles.SummaryStyle})
	}

	for i, row := range rows {
		labelCell, _ := excelize.CoordinatesToCellName(1, i+2)
		valueCell, _ := excelize.CoordinatesToCellName(2, i+2)
		if err := fx.SetCellValue(summarySheet, labelCell, row.label); err != nil {
			return err
		}
		if err := fx.SetCellValue(summarySheet, valueCell, row.value); err != nil {
			return err
		}
		if err := fx.SetCellStyle(summarySheet, labelCell, labelCell, styles.SummaryStyle); err != nil {
			return err
		}
		if err := fx.SetCellStyle(summarySheet, valueCell, valueCell, row.style); err != nil {
			return err
		}
	}

	if err := fx.SetColWidth(summarySheet, "A", "A", 22); err != nil {
		return err
	}
	return fx.SetColWidth(summarySheet, "B", "B", 50)
}

// writeConfigSheet flattens the configuration into key/value rows
func (r *DefaultExcelReporter) writeConfigSheet(fx *excelize.File, report *RunReport, styles ExcelStyles) error {
	if err := writeHeaderRow(fx, configSheet, []string{"Key", "Value"}, styles.HeaderStyle); err != nil {
		return err
	}
	if report.Config == nil {
		return nil
	}

	data, err := json.Marshal(report.Config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	var tree interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	flat := map[string]interface{}{}
	flatten("", tree, flat)
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, k := range keys {
		values := []interface{}{k, flat[k]}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := fx.SetSheetRow(configSheet, cell, &values); err != nil {
			return err
		}
	}

	if err := fx.SetColWidth(configSheet, "A", "A", 32); err != nil {
		return err
	}
	return fx.SetColWidth(configSheet, "B", "B", 24)
}

func flatten(prefix string, node interface{}, out map[string]interface{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, child := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, child, out)
		}
	default:
		out[prefix] = v
	}
}

func writeHeaderRow(fx *excelize.File, sheet string, headers []string, style int) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := fx.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	return fx.SetCellStyle(sheet, "A1", last, style)
}

// Package-level convenience function
func WriteTrialsXLSX(report *RunReport, path string) error {
	return NewDefaultExcelReporter().WriteTrialsXLSX(report, path)
}
