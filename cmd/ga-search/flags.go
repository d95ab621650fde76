package main

import (
	"flag"

	"github.com/ducminhle1904/permutation-ga/cmd/common"
	"github.com/ducminhle1904/permutation-ga/pkg/config"
	"github.com/ducminhle1904/permutation-ga/pkg/genetic"
)

// SearchFlags holds all command line flags for the ga-search command
type SearchFlags struct {
	*common.CommonFlags

	// Configuration
	ConfigFile *string

	// Problem
	Problem     *string
	Size        *int
	MaxDistance *int
	Target      *float64

	// Search parameters
	Population  *int
	Generations *int
	Elitism     *bool
	Fitness     *string

	// Policy
	Selection *string
	Mutation  *string
	Rate      *float64
	Weighting *string
	Rotate    *string

	// Run options
	Seed    *int64
	Trials  *int
	Workers *int

	// Output options
	OutputDir   *string
	LogDir      *string
	NoFileLog   *bool
	ShowTrials  *bool
	MetricsPort *int
	SaveConfig  *string
}

// NewSearchFlags registers every ga-search flag on fs
func NewSearchFlags(fs *flag.FlagSet) *SearchFlags {
	return &SearchFlags{
		CommonFlags: common.RegisterCommonFlags(fs),

		ConfigFile: fs.String("config", "", "Search config file (.json, .yaml or .yml)"),

		Problem:     fs.String("problem", config.DefaultProblem, "Problem to solve (nqueens, tsp)"),
		Size:        fs.Int("size", config.DefaultProblemSize, "Problem size (queens or cities)"),
		MaxDistance: fs.Int("max-distance", config.DefaultMaxDistance, "Maximum edge weight of generated TSP graphs"),
		Target:      fs.Float64("target", 0, "Cost at or below which a trial counts as solved"),

		Population:  fs.Int("population", config.DefaultPopulationSize, "Population size"),
		Generations: fs.Int("generations", config.DefaultGenerations, "Number of generations"),
		Elitism:     fs.Bool("elitism", true, "Carry the best individual into the next generation"),
		Fitness:     fs.String("fitness", genetic.InverseCost.String(), "Fitness mode (inverse, share)"),

		Selection: fs.String("selection", "tournament", "Selection operator (tournament, roulette)"),
		Mutation:  fs.String("mutation", "swap", "Mutation operator (swap, rotate)"),
		Rate:      fs.Float64("rate", genetic.DefaultMutationRate, "Mutation probability"),
		Weighting: fs.String("weighting", genetic.WeightingLiteral.String(), "Roulette weighting (literal, inverted)"),
		Rotate:    fs.String("rotate", genetic.RotatePrefix.String(), "Rotate mutation variant (prefix, segment)"),

		Seed:    fs.Int64("seed", config.DefaultSeed, "Base seed; trial i uses seed+i"),
		Trials:  fs.Int("trials", config.DefaultTrials, "Number of independent trials"),
		Workers: fs.Int("workers", 0, "Parallel workers (0 = all CPUs)"),

		OutputDir:   fs.String("output", "", "Output directory (default results/<PROBLEM>_<size>)"),
		LogDir:      fs.String("log-dir", "", "Session log directory (default from LOG_DIR)"),
		NoFileLog:   fs.Bool("no-file-log", false, "Disable the session log file"),
		ShowTrials:  fs.Bool("show-trials", true, "Print the per-trial table"),
		MetricsPort: fs.Int("metrics-port", 0, "Serve /metrics and /health on this port (0 = METRICS_PORT or off)"),
		SaveConfig:  fs.String("save-config", "", "Write the effective config to this path and continue"),
	}
}

// ApplyTo overlays the explicitly set flags onto cfg
func (f *SearchFlags) ApplyTo(fs *flag.FlagSet, cfg *config.SearchConfig) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "problem":
			cfg.Problem.Name = *f.Problem
		case "size":
			cfg.Problem.Size = *f.Size
		case "max-distance":
			cfg.Problem.MaxDistance = *f.MaxDistance
		case "target":
			target := *f.Target
			cfg.Problem.TargetCost = &target
		case "population":
			cfg.Search.PopulationSize = *f.Population
		case "generations":
			cfg.Search.Generations = *f.Generations
		case "elitism":
			cfg.Search.Elitism = *f.Elitism
		case "fitness":
			cfg.Search.FitnessMode = *f.Fitness
		case "selection":
			cfg.Policy.Selection = *f.Selection
		case "mutation":
			cfg.Policy.Mutation = *f.Mutation
		case "rate":
			cfg.Policy.MutationRate = *f.Rate
		case "weighting":
			cfg.Policy.RouletteWeighting = *f.Weighting
		case "rotate":
			cfg.Policy.RotateVariant = *f.Rotate
		case "seed":
			cfg.Run.Seed = *f.Seed
		case "trials":
			cfg.Run.Trials = *f.Trials
		case "workers":
			cfg.Run.Workers = *f.Workers
		}
	})
}

// Validate checks flag values that are independent of the config file
func (f *SearchFlags) Validate() error {
	return common.NewFlagValidator().
		File("config", *f.ConfigFile, false).
		Choice("problem", *f.Problem, []string{config.ProblemNQueens, config.ProblemTSP}).
		Choice("selection", *f.Selection, []string{"tournament", "roulette"}).
		Choice("mutation", *f.Mutation, []string{"swap", "rotate"}).
		Float("rate", *f.Rate, 0, config.MaxMutationRate).
		Int("metrics-port", *f.MetricsPort, 0, 65535).
		Check(*f.Workers >= 0, "workers", "must be non-negative, got %d", *f.Workers).
		Err()
}

// usage builds the help text of the command
func usage() *common.UsageFormatter {
	return common.NewUsageFormatter(AppName, "Genetic algorithm search over permutation problems").
		AddExample("ga-search -problem nqueens -size 8 -trials 100", "Solve 8-queens 100 times with the default policy").
		AddExample("ga-search -problem tsp -size 20 -selection roulette -mutation rotate -rate 0.3",
			"Search a random 20-city route with roulette selection and rotate mutation").
		AddExample("ga-search -config configs/queens.yaml -metrics-port 9100",
			"Run from a config file and expose Prometheus metrics").
		AddEnvVar("LOG_LEVEL", "Console level (debug, info, warn, error)").
		AddEnvVar("LOG_DIR", "Session log directory").
		AddEnvVar("RESULTS_DIR", "Report root directory").
		AddEnvVar("METRICS_PORT", "Metrics port when -metrics-port is not set").
		AddEnvVar("GA_LOG_EVERY", "Log every n-th generation of single-trial runs (0 = off)").
		AddEnvVar("GA_TIMEOUT", "Abort the run after this duration").
		AddEnvVar("GA_*", "Search overrides (GA_PROBLEM, GA_SIZE, GA_POPULATION, GA_TRIALS, ...)")
}
