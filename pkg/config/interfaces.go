package config

// Package config provides configuration management for GA searches

// Validator interface for configuration validation
type Validator interface {
	Validate(cfg *SearchConfig) error
}

// Common configuration constants
const (
	// Default parameter values
	DefaultProblem        = ProblemNQueens
	DefaultProblemSize    = 8
	DefaultMaxDistance    = 99
	DefaultPopulationSize = 100
	DefaultGenerations    = 1000
	DefaultTrials         = 1
	DefaultSeed           = 1

	// Problem names
	ProblemNQueens = "nqueens"
	ProblemTSP     = "tsp"

	// Validation constants
	MinProblemSize    = 2
	MinPopulationSize = 2
	MaxMutationRate   = 1.0

	// Display and formatting constants
	ReportLineLength = 50

	// File and directory constants
	ResultsDir     = "results"
	BestConfigFile = "config.json"
	TrialsFile     = "trials.xlsx"
)
