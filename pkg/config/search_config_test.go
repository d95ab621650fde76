package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gaerrors "github.com/ducminhle1904/permutation-ga/internal/errors"
	"github.com/ducminhle1904/permutation-ga/pkg/genetic"
)

func TestNewDefaultSearchConfig(t *testing.T) {
	cfg := NewDefaultSearchConfig()
	require.NoError(t, cfg.Validate())

	params, err := cfg.SearchParams()
	require.NoError(t, err)
	assert.Equal(t, genetic.SearchParams{
		FitnessMode:    genetic.InverseCost,
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		Elitism:        true,
	}, params)

	policy, err := genetic.BuildPolicy(cfg.PolicyConfig())
	require.NoError(t, err)
	assert.Equal(t, "tournament-swap(p=0.7)", policy.Name())
	assert.Equal(t, "NQUEENS_8", cfg.OutputName())
}

func TestSearchValidator(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SearchConfig)
		errMsg string
	}{
		{"unknown problem", func(c *SearchConfig) { c.Problem.Name = "sudoku" }, "problem must be"},
		{"small problem", func(c *SearchConfig) { c.Problem.Size = 1 }, "problem size must be at least 2"},
		{"small population", func(c *SearchConfig) { c.Search.PopulationSize = 1 }, "population size must be at least 2"},
		{"negative generations", func(c *SearchConfig) { c.Search.Generations = -1 }, "generations must be non-negative"},
		{"bad fitness", func(c *SearchConfig) { c.Search.FitnessMode = "ratio" }, "fitness"},
		{"rate above one", func(c *SearchConfig) { c.Policy.MutationRate = 1.5 }, "mutation rate"},
		{"bad selection", func(c *SearchConfig) { c.Policy.Selection = "rank" }, "invalid selection"},
		{"bad mutation", func(c *SearchConfig) { c.Policy.Mutation = "scramble" }, "invalid mutation"},
		{"zero trials", func(c *SearchConfig) { c.Run.Trials = 0 }, "trials must be positive"},
		{"negative workers", func(c *SearchConfig) { c.Run.Workers = -2 }, "workers must be non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultSearchConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	assert.Error(t, NewSearchValidator().Validate(nil))
}

func TestBuildProblem(t *testing.T) {
	cfg := NewDefaultSearchConfig()
	p, err := cfg.BuildProblem()
	require.NoError(t, err)
	assert.Equal(t, "nqueens-8", p.Name())
	target, ok := cfg.Target()
	assert.True(t, ok)
	assert.Equal(t, 0.0, target)

	cfg.Problem.Name = ProblemTSP
	cfg.Problem.Size = 6
	p, err = cfg.BuildProblem()
	require.NoError(t, err)
	assert.Equal(t, "tsp-6", p.Name())
	_, ok = cfg.Target()
	assert.False(t, ok)

	// the same seed yields the same graph
	again, err := cfg.BuildProblem()
	require.NoError(t, err)
	route := genetic.Individual{0, 1, 2, 3, 4, 5}
	assert.Equal(t, p.Cost(route), again.Cost(route))

	target = 120
	cfg.Problem.TargetCost = &target
	got, ok := cfg.Target()
	assert.True(t, ok)
	assert.Equal(t, 120.0, got)

	cfg.Problem.Name = "sudoku"
	_, err = cfg.BuildProblem()
	var gaErr *gaerrors.GAError
	require.True(t, errors.As(err, &gaErr))
	assert.Equal(t, gaerrors.ErrorCategoryProblem, gaErr.Category)

	cfg.Problem.Name = ProblemNQueens
	cfg.Problem.Size = 0
	_, err = cfg.BuildProblem()
	require.True(t, errors.As(err, &gaErr))
	assert.Equal(t, gaerrors.ErrorCategoryProblem, gaErr.Category)
}

func TestSearchConfigManager_LoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"problem": {"name": "tsp", "size": 12},
		"search": {"population_size": 40, "generations": 200, "elitism": false, "fitness_mode": "share"},
		"policy": {"selection": "roulette", "mutation": "rotate", "mutation_rate": 0.2}
	}`), 0644))

	m := NewSearchConfigManager()
	cfg, err := m.LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, m.ValidateConfig(cfg))

	assert.Equal(t, ProblemTSP, cfg.Problem.Name)
	assert.Equal(t, 12, cfg.Problem.Size)
	assert.Equal(t, DefaultMaxDistance, cfg.Problem.MaxDistance)
	assert.Equal(t, 40, cfg.Search.PopulationSize)
	assert.False(t, cfg.Search.Elitism)
	assert.Equal(t, "roulette", cfg.Policy.Selection)
	// untouched sections keep their defaults
	assert.Equal(t, "literal", cfg.Policy.RouletteWeighting)
	assert.Equal(t, DefaultTrials, cfg.Run.Trials)
}

func TestSearchConfigManager_LoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
problem:
  name: nqueens
  size: 10
search:
  population_size: 50
  generations: 300
  elitism: true
  fitness_mode: inverse
run:
  seed: 7
  trials: 5
  workers: 2
`), 0644))

	cfg, err := NewSearchConfigManager().LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Problem.Size)
	assert.Equal(t, 50, cfg.Search.PopulationSize)
	assert.Equal(t, int64(7), cfg.Run.Seed)
	assert.Equal(t, 5, cfg.Run.Trials)
	assert.Equal(t, 2, cfg.Run.Workers)
}

func TestSearchConfigManager_LoadErrors(t *testing.T) {
	m := NewSearchConfigManager()

	_, err := m.LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err = m.LoadConfig(path)
	assert.Error(t, err)

	cfg, err := m.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, NewDefaultSearchConfig(), cfg)
}

func TestSearchConfigManager_SaveRoundTrip(t *testing.T) {
	m := NewSearchConfigManager()
	cfg := NewDefaultSearchConfig()
	cfg.Problem.Name = ProblemTSP
	cfg.Run.Trials = 3

	for _, name := range []string{"out/config.json", "out/config.yml"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, m.SaveConfig(cfg, path))

		loaded, err := m.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, cfg, loaded, name)
	}
}

func TestShippedConfigs(t *testing.T) {
	manager := NewSearchConfigManager()
	for _, name := range []string{"queens.yaml", "tsp.yaml"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := manager.LoadConfig(filepath.Join("..", "..", "configs", name))
			require.NoError(t, err)
			require.NoError(t, manager.ValidateConfig(cfg))

			_, err = genetic.BuildPolicy(cfg.PolicyConfig())
			require.NoError(t, err)
			_, err = cfg.BuildProblem()
			require.NoError(t, err)
		})
	}
}
