package genetic

import (
	"fmt"
	"strings"
)

// FitnessMode selects how raw cost is turned into a selection weight.
type FitnessMode int

const (
	// InverseCost scores each individual as 1/(1+cost), independently.
	InverseCost FitnessMode = iota
	// CostShare scores each individual as cost/total over the population.
	// Better (cheaper) individuals get a LOWER share; pair it with
	// RouletteSelector and WeightingInverted to favor them.
	CostShare
)

func (m FitnessMode) String() string {
	switch m {
	case InverseCost:
		return "inverse"
	case CostShare:
		return "share"
	default:
		return fmt.Sprintf("FitnessMode(%d)", int(m))
	}
}

// ParseFitnessMode converts a configuration string to a FitnessMode.
func ParseFitnessMode(s string) (FitnessMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "inverse", "inverse_cost", "inverse-cost":
		return InverseCost, nil
	case "share", "cost_share", "cost-share":
		return CostShare, nil
	default:
		return 0, fmt.Errorf("invalid fitness mode %q (use inverse or share)", s)
	}
}

func (m FitnessMode) valid() bool {
	return m == InverseCost || m == CostShare
}

// InverseCostAptitude returns 1/(1+cost).
func InverseCostAptitude(cost float64) float64 {
	return 1.0 / (1.0 + cost)
}

// TotalCost sums the cost of every individual once.
func TotalCost(costs []float64) float64 {
	total := 0.0
	for _, c := range costs {
		total += c
	}
	return total
}

// Aptitudes computes the aptitude vector for precomputed population costs.
// Under CostShare a zero total yields a uniform 1/len(costs) share.
func Aptitudes(costs []float64, mode FitnessMode) []float64 {
	aptitude := make([]float64, len(costs))
	switch mode {
	case CostShare:
		total := TotalCost(costs)
		for i, c := range costs {
			if total == 0 {
				aptitude[i] = 1.0 / float64(len(costs))
				continue
			}
			aptitude[i] = c / total
		}
	default:
		for i, c := range costs {
			aptitude[i] = InverseCostAptitude(c)
		}
	}
	return aptitude
}
