package nqueens

import (
	"fmt"
	"math/rand"

	"github.com/ducminhle1904/permutation-ga/pkg/genetic"
)

// Problem places N queens on an N×N board. A state holds the row of the
// queen in each column, so rows and columns never clash and only diagonal
// attacks count toward the cost.
type Problem struct {
	n int
}

var _ genetic.Problem = (*Problem)(nil)

// New creates an N-queens problem
func New(n int) (*Problem, error) {
	if n < 2 {
		return nil, fmt.Errorf("board size must be at least 2, got %d", n)
	}
	return &Problem{n: n}, nil
}

// Size returns the board size
func (p *Problem) Size() int {
	return p.n
}

// Name returns a short label for reports
func (p *Problem) Name() string {
	return fmt.Sprintf("nqueens-%d", p.n)
}

// RandomState returns a uniformly random permutation of the rows
func (p *Problem) RandomState(rng *rand.Rand) genetic.Individual {
	return genetic.Individual(rng.Perm(p.n))
}

// Cost counts the pairs of queens sharing a diagonal
func (p *Problem) Cost(state genetic.Individual) float64 {
	attacks := 0
	for i := 0; i < len(state); i++ {
		for j := i + 1; j < len(state); j++ {
			if abs(state[i]-state[j]) == j-i {
				attacks++
			}
		}
	}
	return float64(attacks)
}

// MaxCost is the number of queen pairs, the cost of the worst board
func (p *Problem) MaxCost() float64 {
	return float64(p.n * (p.n - 1) / 2)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
