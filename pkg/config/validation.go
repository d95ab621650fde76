package config

import (
	"fmt"
	"strings"

	"github.com/ducminhle1904/permutation-ga/pkg/genetic"
)

// SearchValidator implements validation for search configurations
type SearchValidator struct{}

// NewSearchValidator creates a new search validator
func NewSearchValidator() *SearchValidator {
	return &SearchValidator{}
}

// Validate performs validation on every configuration section
func (v *SearchValidator) Validate(cfg *SearchConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration must not be nil")
	}
	if err := v.validateProblem(cfg.Problem); err != nil {
		return err
	}
	if err := v.validateSearch(cfg.Search); err != nil {
		return err
	}
	if err := v.validatePolicy(cfg.Policy); err != nil {
		return err
	}
	return v.validateRun(cfg.Run)
}

func (v *SearchValidator) validateProblem(p ProblemConfig) error {
	switch strings.ToLower(p.Name) {
	case ProblemNQueens, ProblemTSP:
	default:
		return fmt.Errorf("problem must be %s or %s, got: %q", ProblemNQueens, ProblemTSP, p.Name)
	}

	if p.Size < MinProblemSize {
		return fmt.Errorf("problem size must be at least %d, got: %d", MinProblemSize, p.Size)
	}

	if p.MaxDistance < 0 {
		return fmt.Errorf("max distance must be non-negative, got: %d", p.MaxDistance)
	}

	if p.TargetCost != nil && *p.TargetCost < 0 {
		return fmt.Errorf("target cost must be non-negative, got: %.4f", *p.TargetCost)
	}

	return nil
}

func (v *SearchValidator) validateSearch(s SearchSection) error {
	if s.PopulationSize < MinPopulationSize {
		return fmt.Errorf("population size must be at least %d, got: %d", MinPopulationSize, s.PopulationSize)
	}

	if s.Generations < 0 {
		return fmt.Errorf("generations must be non-negative, got: %d", s.Generations)
	}

	if _, err := genetic.ParseFitnessMode(s.FitnessMode); err != nil {
		return err
	}

	return nil
}

func (v *SearchValidator) validatePolicy(p PolicySection) error {
	if p.MutationRate < 0 || p.MutationRate > MaxMutationRate {
		return fmt.Errorf("mutation rate must be between 0 and %.1f, got: %.4f", MaxMutationRate, p.MutationRate)
	}

	// Operator names are resolved by the policy builder
	_, err := genetic.BuildPolicy(genetic.PolicyConfig{
		Selection:         p.Selection,
		Crossover:         p.Crossover,
		Mutation:          p.Mutation,
		MutationRate:      p.MutationRate,
		RouletteWeighting: p.RouletteWeighting,
		RotateVariant:     p.RotateVariant,
	})
	return err
}

func (v *SearchValidator) validateRun(r RunSection) error {
	if r.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got: %d", r.Trials)
	}

	if r.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got: %d", r.Workers)
	}

	return nil
}
