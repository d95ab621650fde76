package genetic

import "math/rand"

// Package genetic provides a generational genetic algorithm for
// permutation-encoded combinatorial problems.

// Individual is a candidate solution: a permutation of the symbols 0..N-1.
// Operators never modify an Individual in place; they always return fresh
// slices.
type Individual []int

// Population is an ordered set of individuals. Order matters because
// crossover pairs fathers and mothers by index.
type Population []Individual

// Problem supplies random candidate states and their cost. Lower cost is
// better and costs are assumed non-negative.
type Problem interface {
	RandomState(rng *rand.Rand) Individual
	Cost(individual Individual) float64
}

// Clone returns a copy of the individual
func (ind Individual) Clone() Individual {
	out := make(Individual, len(ind))
	copy(out, ind)
	return out
}

// IsPermutation reports whether the individual holds each symbol 0..N-1
// exactly once.
func (ind Individual) IsPermutation() bool {
	seen := make([]bool, len(ind))
	for _, v := range ind {
		if v < 0 || v >= len(ind) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// SameSymbols reports whether a and b contain the same multiset of symbols.
func SameSymbols(a, b Individual) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

// Best returns the first individual with minimum cost and that cost.
// It returns nil for an empty population.
func (pop Population) Best(problem Problem) (Individual, float64) {
	var best Individual
	bestCost := 0.0
	for i, ind := range pop {
		c := problem.Cost(ind)
		if i == 0 || c < bestCost {
			best, bestCost = ind, c
		}
	}
	return best, bestCost
}

// Costs evaluates every individual of the population.
func (pop Population) Costs(problem Problem) []float64 {
	costs := make([]float64, len(pop))
	for i, ind := range pop {
		costs[i] = problem.Cost(ind)
	}
	return costs
}
