package config

import (
	"fmt"
	"math/rand"
	"strings"

	gaerrors "github.com/ducminhle1904/permutation-ga/internal/errors"
	"github.com/ducminhle1904/permutation-ga/pkg/genetic"
	"github.com/ducminhle1904/permutation-ga/pkg/problems/nqueens"
	"github.com/ducminhle1904/permutation-ga/pkg/problems/tsp"
)

// ProblemConfig selects and sizes the problem instance
type ProblemConfig struct {
	Name        string `json:"name" yaml:"name"`
	Size        int    `json:"size" yaml:"size"`
	MaxDistance int    `json:"max_distance,omitempty" yaml:"max_distance,omitempty"`
	// GraphSeed seeds TSP graph generation; 0 reuses the run seed
	GraphSeed  int64    `json:"graph_seed,omitempty" yaml:"graph_seed,omitempty"`
	TargetCost *float64 `json:"target_cost,omitempty" yaml:"target_cost,omitempty"`
}

// SearchSection holds the engine parameters
type SearchSection struct {
	PopulationSize int    `json:"population_size" yaml:"population_size"`
	Generations    int    `json:"generations" yaml:"generations"`
	Elitism        bool   `json:"elitism" yaml:"elitism"`
	FitnessMode    string `json:"fitness_mode" yaml:"fitness_mode"`
}

// PolicySection names the GA operators
type PolicySection struct {
	Selection         string  `json:"selection" yaml:"selection"`
	Crossover         string  `json:"crossover,omitempty" yaml:"crossover,omitempty"`
	Mutation          string  `json:"mutation" yaml:"mutation"`
	MutationRate      float64 `json:"mutation_rate" yaml:"mutation_rate"`
	RouletteWeighting string  `json:"roulette_weighting,omitempty" yaml:"roulette_weighting,omitempty"`
	RotateVariant     string  `json:"rotate_variant,omitempty" yaml:"rotate_variant,omitempty"`
}

// RunSection controls the benchmark harness
type RunSection struct {
	Seed    int64 `json:"seed" yaml:"seed"`
	Trials  int   `json:"trials" yaml:"trials"`
	Workers int   `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// SearchConfig is the complete configuration of a search run
type SearchConfig struct {
	Problem ProblemConfig `json:"problem" yaml:"problem"`
	Search  SearchSection `json:"search" yaml:"search"`
	Policy  PolicySection `json:"policy" yaml:"policy"`
	Run     RunSection    `json:"run" yaml:"run"`
}

// NewDefaultSearchConfig creates a search configuration with default values
func NewDefaultSearchConfig() *SearchConfig {
	return &SearchConfig{
		Problem: ProblemConfig{
			Name:        DefaultProblem,
			Size:        DefaultProblemSize,
			MaxDistance: DefaultMaxDistance,
		},
		Search: SearchSection{
			PopulationSize: DefaultPopulationSize,
			Generations:    DefaultGenerations,
			Elitism:        true,
			FitnessMode:    genetic.InverseCost.String(),
		},
		Policy: PolicySection{
			Selection:         "tournament",
			Crossover:         "segment",
			Mutation:          "swap",
			MutationRate:      genetic.DefaultMutationRate,
			RouletteWeighting: genetic.WeightingLiteral.String(),
			RotateVariant:     genetic.RotatePrefix.String(),
		},
		Run: RunSection{
			Seed:   DefaultSeed,
			Trials: DefaultTrials,
		},
	}
}

// Validate validates the configuration with the default validator
func (c *SearchConfig) Validate() error {
	return NewSearchValidator().Validate(c)
}

// SearchParams converts the search section into engine parameters
func (c *SearchConfig) SearchParams() (genetic.SearchParams, error) {
	mode, err := genetic.ParseFitnessMode(c.Search.FitnessMode)
	if err != nil {
		return genetic.SearchParams{}, err
	}
	return genetic.SearchParams{
		FitnessMode:    mode,
		PopulationSize: c.Search.PopulationSize,
		Generations:    c.Search.Generations,
		Elitism:        c.Search.Elitism,
	}, nil
}

// PolicyConfig converts the policy section for genetic.BuildPolicy
func (c *SearchConfig) PolicyConfig() genetic.PolicyConfig {
	return genetic.PolicyConfig{
		Selection:         c.Policy.Selection,
		Crossover:         c.Policy.Crossover,
		Mutation:          c.Policy.Mutation,
		MutationRate:      c.Policy.MutationRate,
		RouletteWeighting: c.Policy.RouletteWeighting,
		RotateVariant:     c.Policy.RotateVariant,
	}
}

// NamedProblem is a problem that can describe itself in reports
type NamedProblem interface {
	genetic.Problem
	Name() string
	Size() int
}

// BuildProblem instantiates the configured problem
func (c *SearchConfig) BuildProblem() (NamedProblem, error) {
	switch strings.ToLower(c.Problem.Name) {
	case ProblemNQueens:
		p, err := nqueens.New(c.Problem.Size)
		if err != nil {
			return nil, gaerrors.NewProblemError("config", "BuildProblem", err)
		}
		return p, nil
	case ProblemTSP:
		seed := c.Problem.GraphSeed
		if seed == 0 {
			seed = c.Run.Seed
		}
		maxDistance := c.Problem.MaxDistance
		if maxDistance <= 0 {
			maxDistance = DefaultMaxDistance
		}
		graph := tsp.NewGraph(rand.New(rand.NewSource(seed)), c.Problem.Size, maxDistance)
		p, err := tsp.New(graph)
		if err != nil {
			return nil, gaerrors.NewProblemError("config", "BuildProblem", err)
		}
		return p, nil
	default:
		return nil, gaerrors.NewProblemError("config", "BuildProblem",
			fmt.Errorf("unknown problem %q (use %s or %s)", c.Problem.Name, ProblemNQueens, ProblemTSP))
	}
}

// Target returns the cost at or below which a trial counts as solved.
// N-Queens defaults to 0; TSP has no target unless one is configured.
func (c *SearchConfig) Target() (float64, bool) {
	if c.Problem.TargetCost != nil {
		return *c.Problem.TargetCost, true
	}
	if strings.EqualFold(c.Problem.Name, ProblemNQueens) {
		return 0, true
	}
	return 0, false
}

// OutputName returns the default results directory name, e.g. "NQUEENS_8"
func (c *SearchConfig) OutputName() string {
	return fmt.Sprintf("%s_%d", strings.ToUpper(c.Problem.Name), c.Problem.Size)
}
