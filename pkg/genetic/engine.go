package genetic

import (
	"fmt"
	"math/rand"
	"time"

	gaerrors "github.com/ducminhle1904/permutation-ga/internal/errors"
)

// SearchParams configures one search.
type SearchParams struct {
	FitnessMode    FitnessMode
	PopulationSize int
	Generations    int
	Elitism        bool
}

// Validate checks the parameters before any generation runs
func (p SearchParams) Validate() error {
	if p.PopulationSize < 2 {
		return gaerrors.NewConfigurationError("engine", "Search",
			fmt.Sprintf("population size must be at least 2, got %d", p.PopulationSize))
	}
	if p.Generations < 0 {
		return gaerrors.NewConfigurationError("engine", "Search",
			fmt.Sprintf("generations must be non-negative, got %d", p.Generations))
	}
	if !p.FitnessMode.valid() {
		return gaerrors.NewConfigurationError("engine", "Search",
			fmt.Sprintf("unknown fitness mode %s", p.FitnessMode))
	}
	return nil
}

// GenerationStats summarizes the population at the end of a generation.
type GenerationStats struct {
	Generation     int
	PopulationSize int
	BestCost       float64
	MeanCost       float64
	WorstCost      float64
	EliteCost      float64
	Elitism        bool
}

// Observer receives per-generation statistics.
type Observer interface {
	OnGeneration(stats GenerationStats)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(stats GenerationStats)

func (f ObserverFunc) OnGeneration(stats GenerationStats) { f(stats) }

// Engine runs the generational loop. An Engine owns its random source and
// is not safe for concurrent use; run one engine per goroutine.
type Engine struct {
	ops       Operators
	rng       *rand.Rand
	observers []Observer
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithSeed seeds the engine's random source.
func WithSeed(seed int64) EngineOption {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses an existing random source.
func WithRand(rng *rand.Rand) EngineOption {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithObserver attaches a per-generation observer.
func WithObserver(o Observer) EngineOption {
	return func(e *Engine) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

// NewEngine creates an engine driving the given operators. Without WithSeed
// or WithRand the engine seeds from the clock.
func NewEngine(ops Operators, opts ...EngineOption) *Engine {
	e := &Engine{ops: ops}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.ops == nil {
		e.ops = UnimplementedOperators{}
	}
	return e
}

// Search runs params.Generations generations over problem and returns a copy
// of the minimum-cost individual of the final population.
func (e *Engine) Search(problem Problem, params SearchParams) (Individual, error) {
	if problem == nil {
		return nil, gaerrors.NewConfigurationError("engine", "Search", "problem must not be nil")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	population := make(Population, params.PopulationSize)
	for i := range population {
		population[i] = problem.RandomState(e.rng)
	}

	for gen := 0; gen < params.Generations; gen++ {
		next, elite, err := e.step(problem, params, population)
		if err != nil {
			return nil, gaerrors.CategorizeError(err, "engine", "Search").
				WithContext("generation", gen)
		}
		population = next
		e.notify(problem, params, gen, population, elite)
	}

	best, _ := population.Best(problem)
	if best == nil {
		return nil, gaerrors.NewGAError(gaerrors.ErrorCategoryProblem, "engine", "Search", "final population is empty")
	}
	return best.Clone(), nil
}

// step produces the next generation and the elite carried into it.
func (e *Engine) step(problem Problem, params SearchParams, population Population) (Population, Individual, error) {
	costs := population.Costs(problem)
	aptitude := Aptitudes(costs, params.FitnessMode)

	var elite Individual
	if params.Elitism {
		elite = population[argMin(costs)]
	}

	fathers, mothers, err := e.ops.Select(e.rng, population, aptitude)
	if err != nil {
		return nil, nil, err
	}
	children, err := CrossLists(e.rng, e.ops, fathers, mothers)
	if err != nil {
		return nil, nil, err
	}
	children, err = e.ops.Mutate(e.rng, children)
	if err != nil {
		return nil, nil, err
	}

	next := truncate(children, params.PopulationSize)
	next = stageElite(next, elite)
	return next, elite, nil
}

// truncate drops surplus individuals from the tail; it never pads.
func truncate(population Population, size int) Population {
	if len(population) > size {
		return population[:size]
	}
	return population
}

// stageElite appends the elite after truncation. The result may exceed the
// nominal size by one until the next generation truncates it.
func stageElite(population Population, elite Individual) Population {
	if elite == nil {
		return population
	}
	staged := make(Population, len(population), len(population)+1)
	copy(staged, population)
	return append(staged, elite)
}

func (e *Engine) notify(problem Problem, params SearchParams, gen int, population Population, elite Individual) {
	if len(e.observers) == 0 {
		return
	}

	costs := population.Costs(problem)
	stats := GenerationStats{
		Generation:     gen + 1,
		PopulationSize: len(population),
		Elitism:        params.Elitism,
	}
	if len(costs) > 0 {
		stats.BestCost = costs[argMin(costs)]
		stats.WorstCost = costs[0]
		for _, c := range costs {
			stats.WorstCost = max(stats.WorstCost, c)
		}
		stats.MeanCost = TotalCost(costs) / float64(len(costs))
	}
	if elite != nil {
		stats.EliteCost = problem.Cost(elite)
	}

	for _, o := range e.observers {
		o.OnGeneration(stats)
	}
}

// argMin returns the first index holding the minimum value.
func argMin(values []float64) int {
	best := 0
	for i, v := range values {
		if v < values[best] {
			best = i
		}
	}
	return best
}
