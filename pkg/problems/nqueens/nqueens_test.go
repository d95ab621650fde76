package nqueens

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/permutation-ga/pkg/genetic"
)

func TestNew(t *testing.T) {
	_, err := New(1)
	assert.Error(t, err)

	p, err := New(8)
	require.NoError(t, err)
	assert.Equal(t, 8, p.Size())
	assert.Equal(t, "nqueens-8", p.Name())
	assert.Equal(t, 28.0, p.MaxCost())
}

func TestProblem_Cost(t *testing.T) {
	p, err := New(4)
	require.NoError(t, err)

	tests := []struct {
		name  string
		state genetic.Individual
		want  float64
	}{
		{"solution", genetic.Individual{1, 3, 0, 2}, 0},
		{"mirrored solution", genetic.Individual{2, 0, 3, 1}, 0},
		{"main diagonal", genetic.Individual{0, 1, 2, 3}, 6},
		{"anti diagonal", genetic.Individual{3, 2, 1, 0}, 6},
		{"two swapped pairs", genetic.Individual{1, 0, 3, 2}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Cost(tt.state))
		})
	}
}

func TestProblem_RandomState(t *testing.T) {
	p, err := New(12)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		state := p.RandomState(rng)
		assert.Len(t, state, 12)
		assert.True(t, state.IsPermutation())
		cost := p.Cost(state)
		assert.GreaterOrEqual(t, cost, 0.0)
		assert.LessOrEqual(t, cost, p.MaxCost())
	}
}
