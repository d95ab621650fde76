package genetic

import (
	"math/rand"

	gaerrors "github.com/ducminhle1904/permutation-ga/internal/errors"
)

// ErrUnimplemented is returned by operators a policy does not provide.
var ErrUnimplemented = gaerrors.ErrUnimplemented

// Selector picks the father and mother sub-populations.
type Selector interface {
	Select(rng *rand.Rand, population Population, aptitude []float64) (fathers, mothers Population, err error)
}

// Crosser combines two parents into at least two children.
type Crosser interface {
	Cross(rng *rand.Rand, father, mother Individual) ([]Individual, error)
}

// Mutator perturbs a population, returning the mutated copy.
type Mutator interface {
	Mutate(rng *rand.Rand, population Population) (Population, error)
}

// Operators is the capability set the engine drives.
type Operators interface {
	Selector
	Crosser
	Mutator
}

// UnimplementedOperators fails every operation with ErrUnimplemented.
// Embed it in partial operator sets so missing capabilities fail fast.
type UnimplementedOperators struct{}

func (UnimplementedOperators) Select(*rand.Rand, Population, []float64) (Population, Population, error) {
	return nil, nil, gaerrors.NewUnimplementedError("selection", "Select")
}

func (UnimplementedOperators) Cross(*rand.Rand, Individual, Individual) ([]Individual, error) {
	return nil, gaerrors.NewUnimplementedError("crossover", "Cross")
}

func (UnimplementedOperators) Mutate(*rand.Rand, Population) (Population, error) {
	return nil, gaerrors.NewUnimplementedError("mutation", "Mutate")
}

// CrossLists crosses fathers[i] with mothers[i] and concatenates every
// child. Surplus entries of the longer list are ignored.
func CrossLists(rng *rand.Rand, c Crosser, fathers, mothers Population) (Population, error) {
	pairs := min(len(fathers), len(mothers))
	children := make(Population, 0, 2*pairs)
	for i := 0; i < pairs; i++ {
		kids, err := c.Cross(rng, fathers[i], mothers[i])
		if err != nil {
			return nil, err
		}
		children = append(children, kids...)
	}
	return children, nil
}
