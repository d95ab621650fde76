package genetic

import (
	"fmt"
	"math/rand"
	"strings"

	gaerrors "github.com/ducminhle1904/permutation-ga/internal/errors"
)

// TournamentSelector pairs shuffled indices and keeps the fitter member of
// each pair. Fathers and mothers come from two independent shuffles, so each
// list has len(population)/2 members; an odd trailing index is dropped.
type TournamentSelector struct{}

// Select performs pairwise tournament selection
func (TournamentSelector) Select(rng *rand.Rand, population Population, aptitude []float64) (Population, Population, error) {
	if len(aptitude) != len(population) {
		return nil, nil, aptitudeMismatch("TournamentSelector", len(population), len(aptitude))
	}
	fathers := tournamentRound(rng, population, aptitude)
	mothers := tournamentRound(rng, population, aptitude)
	return fathers, mothers, nil
}

func tournamentRound(rng *rand.Rand, population Population, aptitude []float64) Population {
	deck := rng.Perm(len(population))
	winners := make(Population, 0, len(population)/2)
	for i := 0; i+1 < len(deck); i += 2 {
		a, b := deck[i], deck[i+1]
		// ties go to the second contender
		winner := b
		if aptitude[a] > aptitude[b] {
			winner = a
		}
		winners = append(winners, population[winner])
	}
	return winners
}

// RouletteWeighting decides how aptitude values become roulette weights.
type RouletteWeighting int

const (
	// WeightingLiteral uses aptitude values as weights unchanged. With
	// CostShare aptitudes this favors worse individuals.
	WeightingLiteral RouletteWeighting = iota
	// WeightingInverted reflects the aptitudes (max+min-a) so the lowest
	// aptitude gets the largest weight.
	WeightingInverted
)

func (w RouletteWeighting) String() string {
	switch w {
	case WeightingLiteral:
		return "literal"
	case WeightingInverted:
		return "inverted"
	default:
		return fmt.Sprintf("RouletteWeighting(%d)", int(w))
	}
}

// ParseRouletteWeighting converts a configuration string to a weighting.
func ParseRouletteWeighting(s string) (RouletteWeighting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "literal":
		return WeightingLiteral, nil
	case "inverted", "inverse":
		return WeightingInverted, nil
	default:
		return 0, fmt.Errorf("invalid roulette weighting %q (use literal or inverted)", s)
	}
}

// RouletteSelector draws len(population) fathers and len(population)
// mothers by cumulative weight sampling.
type RouletteSelector struct {
	Weighting RouletteWeighting
}

// Select performs weighted cumulative selection
func (s RouletteSelector) Select(rng *rand.Rand, population Population, aptitude []float64) (Population, Population, error) {
	if len(aptitude) != len(population) {
		return nil, nil, aptitudeMismatch("RouletteSelector", len(population), len(aptitude))
	}
	weights := s.weights(aptitude)
	fathers := rouletteRound(rng, population, weights)
	mothers := rouletteRound(rng, population, weights)
	return fathers, mothers, nil
}

func (s RouletteSelector) weights(aptitude []float64) []float64 {
	if s.Weighting != WeightingInverted || len(aptitude) == 0 {
		return aptitude
	}
	lo, hi := aptitude[0], aptitude[0]
	for _, a := range aptitude[1:] {
		lo = min(lo, a)
		hi = max(hi, a)
	}
	weights := make([]float64, len(aptitude))
	for i, a := range aptitude {
		weights[i] = hi + lo - a
	}
	return weights
}

func rouletteRound(rng *rand.Rand, population Population, weights []float64) Population {
	total := TotalCost(weights)
	picked := make(Population, 0, len(population))
	for range population {
		picked = append(picked, population[spin(rng, weights, total)])
	}
	return picked
}

// spin returns the first index whose running weight reaches a uniform draw
// over [0, total). A zero total degenerates to a uniform pick.
func spin(rng *rand.Rand, weights []float64, total float64) int {
	if total <= 0 {
		return rng.Intn(len(weights))
	}
	r := rng.Float64() * total
	sum := 0.0
	for i, w := range weights {
		sum += w
		if sum >= r {
			return i
		}
	}
	// rounding left the running sum just short of r
	return len(weights) - 1
}

func aptitudeMismatch(component string, population, aptitude int) error {
	return gaerrors.NewValidationError(component, "Select",
		fmt.Sprintf("aptitude vector has %d entries for a population of %d", aptitude, population))
}
