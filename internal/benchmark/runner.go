package benchmark

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	gaerrors "github.com/ducminhle1904/permutation-ga/internal/errors"
	"github.com/ducminhle1904/permutation-ga/pkg/genetic"
)

// Trial is the outcome of one seeded search
type Trial struct {
	ID       string
	Index    int
	Seed     int64
	Cost     float64
	Solved   bool
	Duration time.Duration
	Solution genetic.Individual
	Err      error
}

// Summary aggregates the successful trials of a run
type Summary struct {
	Trials        int
	Completed     int
	Failed        int
	Solved        int
	SuccessRate   float64
	MeanCost      float64
	MinCost       float64
	MaxCost       float64
	MeanDuration  time.Duration
	TotalDuration time.Duration
	Elapsed       time.Duration
	BestTrial     int
}

// Result holds every trial of a run ordered by index
type Result struct {
	RunID   string
	Trials  []Trial
	Summary Summary
	Errors  *gaerrors.ErrorStats
}

// Best returns the lowest-cost completed trial, or nil if none completed
func (r *Result) Best() *Trial {
	if r.Summary.BestTrial < 0 || r.Summary.BestTrial >= len(r.Trials) {
		return nil
	}
	return &r.Trials[r.Summary.BestTrial]
}

// Runner repeats a search over consecutive seeds
type Runner struct {
	Problem   genetic.Problem
	Operators genetic.Operators
	Params    genetic.SearchParams

	Trials   int
	Workers  int
	BaseSeed int64

	// Target marks trials with cost <= Target as solved when HasTarget is set
	Target    float64
	HasTarget bool

	// Observers returns the generation observers of one trial
	Observers func(job TrialJob) []genetic.Observer
	// OnTrial is called from the collecting goroutine for every finished trial
	OnTrial func(trial Trial, completed, total int)
}

const maxRecentErrors = 10

// Run executes every trial and returns them with their summary. When ctx is
// cancelled the completed trials are returned together with ctx.Err().
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if r.Problem == nil {
		return nil, gaerrors.NewConfigurationError("benchmark", "Run", "problem must not be nil")
	}
	if r.Trials <= 0 {
		return nil, gaerrors.NewConfigurationError("benchmark", "Run",
			fmt.Sprintf("trials must be positive, got %d", r.Trials))
	}
	if err := r.Params.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	pool := newTrialPool(ctx, r.Workers, r.Trials, r.BaseSeed, r.runTrial)
	pool.start()

	for i := 0; i < r.Trials; i++ {
		if err := pool.submit(i); err != nil {
			break
		}
	}
	go pool.finish()

	result := &Result{
		RunID:  uuid.NewString(),
		Trials: make([]Trial, 0, r.Trials),
		Errors: gaerrors.NewErrorStats(maxRecentErrors),
	}
	progress := NewProgress(r.Trials)
	for trial := range pool.results {
		result.Trials = append(result.Trials, trial)
		if trial.Err != nil {
			result.Errors.RecordError(gaerrors.CategorizeError(trial.Err, "benchmark", "Run").
				WithContext("trial", trial.Index))
		}
		completed := progress.Done()
		if r.OnTrial != nil {
			r.OnTrial(trial, completed, r.Trials)
		}
	}

	sort.Slice(result.Trials, func(i, j int) bool {
		return result.Trials[i].Index < result.Trials[j].Index
	})
	result.Summary = Summarize(result.Trials, r.Trials)
	result.Summary.Elapsed = time.Since(start)

	return result, ctx.Err()
}

func (r *Runner) runTrial(job TrialJob) Trial {
	trial := Trial{
		ID:    uuid.NewString(),
		Index: job.Index,
		Seed:  job.Seed,
	}

	opts := []genetic.EngineOption{genetic.WithSeed(job.Seed)}
	if r.Observers != nil {
		for _, o := range r.Observers(job) {
			opts = append(opts, genetic.WithObserver(o))
		}
	}
	engine := genetic.NewEngine(r.Operators, opts...)

	start := time.Now()
	best, err := engine.Search(r.Problem, r.Params)
	trial.Duration = time.Since(start)
	if err != nil {
		trial.Err = err
		return trial
	}

	trial.Solution = best
	trial.Cost = r.Problem.Cost(best)
	trial.Solved = r.HasTarget && trial.Cost <= r.Target
	return trial
}

// Summarize aggregates trials; planned is the number of trials requested
func Summarize(trials []Trial, planned int) Summary {
	s := Summary{
		Trials:    planned,
		MinCost:   math.Inf(1),
		MaxCost:   math.Inf(-1),
		BestTrial: -1,
	}

	totalCost := 0.0
	for i, t := range trials {
		s.TotalDuration += t.Duration
		if t.Err != nil {
			s.Failed++
			continue
		}
		s.Completed++
		if t.Solved {
			s.Solved++
		}
		totalCost += t.Cost
		if t.Cost < s.MinCost {
			s.MinCost = t.Cost
			s.BestTrial = i
		}
		s.MaxCost = math.Max(s.MaxCost, t.Cost)
	}

	if s.Completed == 0 {
		s.MinCost, s.MaxCost = 0, 0
		return s
	}
	s.MeanCost = totalCost / float64(s.Completed)
	s.SuccessRate = float64(s.Solved) / float64(s.Completed)
	s.MeanDuration = s.TotalDuration / time.Duration(len(trials))
	return s
}
