package reporting

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// maxConsoleTrials caps the per-trial table; the summary always covers every trial
const maxConsoleTrials = 50

// DefaultConsoleReporter implements console output functionality
type DefaultConsoleReporter struct {
	out io.Writer
}

// NewDefaultConsoleReporter creates a console reporter writing to stdout
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return &DefaultConsoleReporter{out: os.Stdout}
}

// NewConsoleReporter creates a console reporter writing to w
func NewConsoleReporter(w io.Writer) *DefaultConsoleReporter {
	return &DefaultConsoleReporter{out: w}
}

// OutputTrials prints one row per trial
func (r *DefaultConsoleReporter) OutputTrials(report *RunReport) {
	if report == nil || report.Result == nil {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle(fmt.Sprintf("TRIALS - %s / %s", report.Problem, report.Policy))
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Seed", "Cost", "Solved", "Duration", "Solution"})

	for i, trial := range report.Result.Trials {
		if i == maxConsoleTrials {
			t.AppendFooter(table.Row{"", "", "", "", "", fmt.Sprintf("... %d more", len(report.Result.Trials)-i)})
			break
		}
		if trial.Err != nil {
			t.AppendRow(table.Row{trial.Index, trial.Seed, "-", "❌ error", trial.Duration.Round(time.Microsecond), trial.Err.Error()})
			continue
		}
		t.AppendRow(table.Row{
			trial.Index,
			trial.Seed,
			fmt.Sprintf("%.4f", trial.Cost),
			solvedMark(trial.Solved),
			trial.Duration.Round(time.Microsecond),
			formatSolution(trial.Solution),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 6, WidthMax: 60},
	})

	t.Render()
	fmt.Fprintln(r.out)
}

// OutputSummary prints the aggregate statistics of the run
func (r *DefaultConsoleReporter) OutputSummary(report *RunReport) {
	if report == nil || report.Result == nil {
		return
	}
	s := report.Result.Summary

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("📊 SEARCH SUMMARY")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"🧩 Problem", report.Problem},
		{"🧬 Policy", report.Policy},
		{"👥 Population", report.Params.PopulationSize},
		{"🔁 Generations", report.Params.Generations},
		{"⚖️  Fitness", report.Params.FitnessMode.String()},
		{"🏅 Elitism", report.Params.Elitism},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"🎲 Trials", fmt.Sprintf("%d (completed %d, failed %d)", s.Trials, s.Completed, s.Failed)},
		{"🎯 Solved", fmt.Sprintf("%d (%.1f%%)", s.Solved, s.SuccessRate*100)},
		{"📉 Cost min / mean / max", fmt.Sprintf("%.4f / %.4f / %.4f", s.MinCost, s.MeanCost, s.MaxCost)},
		{"⏱️  Mean duration", s.MeanDuration.String()},
		{"⏱️  Elapsed", s.Elapsed.String()},
	})
	if best := report.Result.Best(); best != nil {
		t.AppendSeparator()
		t.AppendRow(table.Row{"🏆 Best solution", fmt.Sprintf("trial %d: %s", best.Index, formatSolution(best.Solution))})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 24, WidthMax: 24, Align: text.AlignLeft},
		{Number: 2, WidthMin: 30, WidthMax: 70, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Fprintln(r.out)
}

// PrintConfig prints configuration to console
func (r *DefaultConsoleReporter) PrintConfig(config interface{}) {
	data, err := FormatJSON(config)
	if err != nil {
		fmt.Fprintf(r.out, "Configuration: %+v\n", config)
		return
	}
	fmt.Fprintln(r.out, string(data))
}

func solvedMark(solved bool) string {
	if solved {
		return "✅ yes"
	}
	return "no"
}

// formatSolution renders an individual as "[a b c]"
func formatSolution(values []int) string {
	if values == nil {
		return "-"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
