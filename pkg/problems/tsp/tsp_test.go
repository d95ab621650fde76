package tsp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/permutation-ga/pkg/genetic"
)

func TestNewGraph_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	g := NewGraph(rng, 9, 99)

	require.Equal(t, 9, g.Cities())
	for i := 0; i < g.Cities(); i++ {
		assert.Equal(t, 0, g.Distance(i, i))
		for j := 0; j < g.Cities(); j++ {
			assert.Equal(t, g.Distance(i, j), g.Distance(j, i))
			if i != j {
				assert.GreaterOrEqual(t, g.Distance(i, j), 1)
				assert.LessOrEqual(t, g.Distance(i, j), 99)
			}
		}
	}
}

func TestProblem_Cost(t *testing.T) {
	g, err := NewGraphFromMatrix([][]int{
		{0, 2, 9},
		{2, 0, 4},
		{9, 4, 0},
	})
	require.NoError(t, err)
	p, err := New(g)
	require.NoError(t, err)

	assert.Equal(t, 6.0, p.Cost(genetic.Individual{0, 1, 2}))
	assert.Equal(t, 11.0, p.Cost(genetic.Individual{1, 0, 2}))
	assert.Equal(t, "tsp-3", p.Name())
}

func TestNew_Invalid(t *testing.T) {
	_, err := NewGraphFromMatrix([][]int{{0, 1}, {1}})
	assert.Error(t, err)

	g, err := NewGraphFromMatrix([][]int{{0}})
	require.NoError(t, err)
	_, err = New(g)
	assert.Error(t, err)
}

func TestSearch_NeverWorseThanInitialBest(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p, err := New(NewGraph(rng, 10, 99))
	require.NoError(t, err)

	// the engine draws its initial population from the same seeded source
	const seed = 21
	initRng := rand.New(rand.NewSource(seed))
	initial := make(genetic.Population, 30)
	for i := range initial {
		initial[i] = p.RandomState(initRng)
	}
	_, initialBest := initial.Best(p)

	engine := genetic.NewEngine(genetic.TournamentSwapPolicy(0.05), genetic.WithSeed(seed))
	best, err := engine.Search(p, genetic.SearchParams{PopulationSize: 30, Generations: 60, Elitism: true})
	require.NoError(t, err)
	assert.True(t, best.IsPermutation())
	assert.LessOrEqual(t, p.Cost(best), initialBest)
}
