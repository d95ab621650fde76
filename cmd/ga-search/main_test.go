package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/permutation-ga/cmd/common"
	internalconfig "github.com/ducminhle1904/permutation-ga/internal/config"
	gaerrors "github.com/ducminhle1904/permutation-ga/internal/errors"
	"github.com/ducminhle1904/permutation-ga/pkg/config"
	"github.com/ducminhle1904/permutation-ga/pkg/reporting"
)

// isolate points every environment-derived path at a temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("LOG_DIR", filepath.Join(dir, "logs"))
	t.Setenv("RESULTS_DIR", filepath.Join(dir, "results"))
	t.Setenv("METRICS_PORT", "")
	t.Setenv("GA_TIMEOUT", "")
	return dir
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	code := run(context.Background(), []string{"-version"}, &out)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), AppName+" v")
}

func TestRun_NQueensWritesReports(t *testing.T) {
	dir := isolate(t)
	var out bytes.Buffer

	code := run(context.Background(), []string{
		"-env", filepath.Join(dir, "none.env"),
		"-problem", "nqueens", "-size", "5",
		"-population", "20", "-generations", "30",
		"-trials", "3", "-workers", "2", "-seed", "7",
	}, &out)
	require.Equal(t, 0, code, out.String())

	resultsDir := filepath.Join(dir, "results", "NQUEENS_5")
	for _, name := range []string{reporting.TrialsXLSXFile, reporting.TrialsCSVFile, reporting.SummaryJSONFile, reporting.ConfigJSONFile} {
		assert.FileExists(t, filepath.Join(resultsDir, name))
	}

	data, err := os.ReadFile(filepath.Join(resultsDir, reporting.SummaryJSONFile))
	require.NoError(t, err)
	var doc reporting.SummaryDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "nqueens-5", doc.Problem)
	assert.Equal(t, 3, doc.Trials)
	assert.Equal(t, 3, doc.Completed)

	logs, err := filepath.Glob(filepath.Join(dir, "logs", "nqueens-5_*.log"))
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	assert.Contains(t, out.String(), "SEARCH SUMMARY")
}

func TestRun_ConsoleOnlyWithConfigFile(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, "search.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
problem:
  name: tsp
  size: 8
search:
  population_size: 16
  generations: 10
  elitism: true
  fitness_mode: share
policy:
  selection: roulette
  mutation: rotate
  mutation_rate: 0.3
run:
  seed: 3
  trials: 2
`), 0644))

	var out bytes.Buffer
	code := run(context.Background(), []string{
		"-env", filepath.Join(dir, "none.env"),
		"-config", cfgPath,
		"-console-only",
		"-no-emojis",
	}, &out)
	require.Equal(t, 0, code, out.String())

	assert.Contains(t, out.String(), "tsp-8")
	assert.Contains(t, out.String(), "roulette-literal-rotate-prefix(p=0.3)")
	assert.NoDirExists(t, filepath.Join(dir, "results"))
	assert.NoDirExists(t, filepath.Join(dir, "logs"))
}

func TestRun_InvalidFlags(t *testing.T) {
	dir := isolate(t)
	var out bytes.Buffer

	code := run(context.Background(), []string{"-env", filepath.Join(dir, "none.env"), "-problem", "sudoku"}, &out)
	assert.Equal(t, 2, code)

	out.Reset()
	code = run(context.Background(), []string{"-env", filepath.Join(dir, "none.env"), "-population", "1", "-console-only"}, &out)
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "population size must be at least 2")
}

func TestLoadSearchConfig_Precedence(t *testing.T) {
	isolate(t)
	t.Setenv("GA_SIZE", "9")
	t.Setenv("GA_POPULATION", "30")

	cfgPath := filepath.Join(t.TempDir(), "search.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"problem": {"name": "nqueens", "size": 6}, "search": {"population_size": 12, "generations": 5, "elitism": true}}`), 0644))

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := NewSearchFlags(fs)
	require.NoError(t, fs.Parse([]string{"-config", cfgPath, "-population", "44", "-elitism=false"}))

	cfg, err := loadSearchConfig(fs, flags)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Problem.Size)
	assert.Equal(t, 44, cfg.Search.PopulationSize)
	assert.Equal(t, 5, cfg.Search.Generations)
	assert.False(t, cfg.Search.Elitism)
	assert.Nil(t, cfg.Problem.TargetCost)
	assert.Equal(t, config.DefaultTrials, cfg.Run.Trials)
}

func TestRunSearch_ErrorCategories(t *testing.T) {
	isolate(t)
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := NewSearchFlags(fs)
	require.NoError(t, fs.Parse([]string{"-no-file-log", "-silent"}))

	var out bytes.Buffer
	log := common.NewLogger()
	log.Out = &out
	env := internalconfig.Load()

	cfg := config.NewDefaultSearchConfig()
	cfg.Search.FitnessMode = "bogus"
	err := runSearch(context.Background(), cfg, env, flags, log, &out)
	var gaErr *gaerrors.GAError
	require.True(t, errors.As(err, &gaErr))
	assert.Equal(t, gaerrors.ErrorCategoryConfiguration, gaErr.Category)

	cfg = config.NewDefaultSearchConfig()
	cfg.Problem.Name = "sudoku"
	err = runSearch(context.Background(), cfg, env, flags, log, &out)
	require.True(t, errors.As(err, &gaErr))
	assert.Equal(t, gaerrors.ErrorCategoryProblem, gaErr.Category)
}

func TestRun_ReportWriteFailureIsIOError(t *testing.T) {
	dir := isolate(t)
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	var out bytes.Buffer
	code := run(context.Background(), []string{
		"-env", filepath.Join(dir, "none.env"),
		"-size", "4", "-population", "8", "-generations", "5",
		"-no-file-log",
		"-output", filepath.Join(blocker, "reports"),
	}, &out)
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "[IO:reporting] WriteAll")
}
