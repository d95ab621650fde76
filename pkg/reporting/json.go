package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SummaryDocument is the JSON form of a run summary
type SummaryDocument struct {
	RunID          string  `json:"run_id"`
	Problem        string  `json:"problem"`
	Policy         string  `json:"policy"`
	PopulationSize int     `json:"population_size"`
	Generations    int     `json:"generations"`
	FitnessMode    string  `json:"fitness_mode"`
	Elitism        bool    `json:"elitism"`
	Trials         int     `json:"trials"`
	Completed      int     `json:"completed"`
	Failed         int     `json:"failed"`
	Solved         int     `json:"solved"`
	SuccessRate    float64 `json:"success_rate"`
	MeanCost       float64 `json:"mean_cost"`
	MinCost        float64 `json:"min_cost"`
	MaxCost        float64 `json:"max_cost"`
	MeanDurationMs float64 `json:"mean_duration_ms"`
	ElapsedMs      float64 `json:"elapsed_ms"`
	BestTrial      int     `json:"best_trial"`
	BestSolution   []int   `json:"best_solution,omitempty"`
}

// NewSummaryDocument builds the JSON summary of a report
func NewSummaryDocument(report *RunReport) SummaryDocument {
	s := report.Result.Summary
	doc := SummaryDocument{
		RunID:          report.Result.RunID,
		Problem:        report.Problem,
		Policy:         report.Policy,
		PopulationSize: report.Params.PopulationSize,
		Generations:    report.Params.Generations,
		FitnessMode:    report.Params.FitnessMode.String(),
		Elitism:        report.Params.Elitism,
		Trials:         s.Trials,
		Completed:      s.Completed,
		Failed:         s.Failed,
		Solved:         s.Solved,
		SuccessRate:    s.SuccessRate,
		MeanCost:       s.MeanCost,
		MinCost:        s.MinCost,
		MaxCost:        s.MaxCost,
		MeanDurationMs: float64(s.MeanDuration.Microseconds()) / 1000,
		ElapsedMs:      float64(s.Elapsed.Microseconds()) / 1000,
		BestTrial:      -1,
	}
	if best := report.Result.Best(); best != nil {
		doc.BestTrial = best.Index
		doc.BestSolution = best.Solution
	}
	return doc
}

// FormatJSON formats a value as indented JSON bytes
func FormatJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// WriteSummaryJSON writes the run summary to path
func WriteSummaryJSON(report *RunReport, path string) error {
	return writeJSON(NewSummaryDocument(report), path)
}

// WriteConfigJSON writes configuration to JSON file
func WriteConfigJSON(config interface{}, path string) error {
	return writeJSON(config, path)
}

func writeJSON(v interface{}, path string) error {
	data, err := FormatJSON(v)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0644)
}
