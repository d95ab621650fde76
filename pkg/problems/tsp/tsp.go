package tsp

import (
	"fmt"
	"math/rand"

	"github.com/ducminhle1904/permutation-ga/pkg/genetic"
)

// Graph is a symmetric distance matrix between cities
type Graph struct {
	distances [][]int
}

// NewGraph builds a random symmetric graph with distances in [1, maxDistance]
func NewGraph(rng *rand.Rand, cities int, maxDistance int) Graph {
	distances := make([][]int, cities)
	for i := range distances {
		distances[i] = make([]int, cities)
	}
	for i := 0; i < cities; i++ {
		for j := i + 1; j < cities; j++ {
			d := rng.Intn(maxDistance) + 1
			distances[i][j] = d
			distances[j][i] = d
		}
	}
	return Graph{distances: distances}
}

// NewGraphFromMatrix wraps an existing distance matrix
func NewGraphFromMatrix(distances [][]int) (Graph, error) {
	for i, row := range distances {
		if len(row) != len(distances) {
			return Graph{}, fmt.Errorf("distance matrix row %d has %d entries, want %d", i, len(row), len(distances))
		}
	}
	return Graph{distances: distances}, nil
}

// Cities returns the number of cities
func (g Graph) Cities() int {
	return len(g.distances)
}

// Distance returns the distance between two cities
func (g Graph) Distance(from, to int) int {
	return g.distances[from][to]
}

// Problem searches for the lightest route visiting every city once. The
// route is open: it does not return to its first city.
type Problem struct {
	graph Graph
}

var _ genetic.Problem = (*Problem)(nil)

// New creates a TSP problem over graph
func New(graph Graph) (*Problem, error) {
	if graph.Cities() < 2 {
		return nil, fmt.Errorf("graph must have at least 2 cities, got %d", graph.Cities())
	}
	return &Problem{graph: graph}, nil
}

// Name returns a short label for reports
func (p *Problem) Name() string {
	return fmt.Sprintf("tsp-%d", p.graph.Cities())
}

// Size returns the number of cities
func (p *Problem) Size() int {
	return p.graph.Cities()
}

// RandomState returns a random route
func (p *Problem) RandomState(rng *rand.Rand) genetic.Individual {
	return genetic.Individual(rng.Perm(p.graph.Cities()))
}

// Cost is the route weight: the sum of consecutive edge distances
func (p *Problem) Cost(route genetic.Individual) float64 {
	weight := 0
	for i := 0; i < len(route)-1; i++ {
		weight += p.graph.Distance(route[i], route[i+1])
	}
	return float64(weight)
}
