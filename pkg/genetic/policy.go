package genetic

import (
	"fmt"
	"math/rand"
	"strings"
)

// Policy composes a selector, a crosser and a mutator into the operator set
// the engine drives. Nil members fail with ErrUnimplemented.
type Policy struct {
	name     string
	selector Selector
	crosser  Crosser
	mutator  Mutator
}

var _ Operators = (*Policy)(nil)

// NewPolicy assembles a policy from explicit operators.
func NewPolicy(name string, selector Selector, crosser Crosser, mutator Mutator) *Policy {
	return &Policy{
		name:     name,
		selector: selector,
		crosser:  crosser,
		mutator:  mutator,
	}
}

// Name describes the policy
func (p *Policy) Name() string {
	return p.name
}

func (p *Policy) Select(rng *rand.Rand, population Population, aptitude []float64) (Population, Population, error) {
	if p.selector == nil {
		return UnimplementedOperators{}.Select(rng, population, aptitude)
	}
	return p.selector.Select(rng, population, aptitude)
}

func (p *Policy) Cross(rng *rand.Rand, father, mother Individual) ([]Individual, error) {
	if p.crosser == nil {
		return UnimplementedOperators{}.Cross(rng, father, mother)
	}
	return p.crosser.Cross(rng, father, mother)
}

func (p *Policy) Mutate(rng *rand.Rand, population Population) (Population, error) {
	if p.mutator == nil {
		return UnimplementedOperators{}.Mutate(rng, population)
	}
	return p.mutator.Mutate(rng, population)
}

// DefaultMutationRate is the mutation probability of the tournament/swap policy.
const DefaultMutationRate = 0.7

// TournamentSwapPolicy is tournament selection, segment crossover and
// per-position swap mutation.
func TournamentSwapPolicy(rate float64) *Policy {
	return NewPolicy(
		fmt.Sprintf("tournament-swap(p=%g)", rate),
		TournamentSelector{},
		SegmentCrossover{},
		SwapMutation{Rate: rate},
	)
}

// RouletteRotatePolicy is roulette selection, segment crossover and
// per-individual rotation mutation. Use it with CostShare fitness.
func RouletteRotatePolicy(rate float64, weighting RouletteWeighting, variant RotateVariant) *Policy {
	return NewPolicy(
		fmt.Sprintf("roulette-%s-rotate-%s(p=%g)", weighting, variant, rate),
		RouletteSelector{Weighting: weighting},
		SegmentCrossover{},
		RotateMutation{Rate: rate, Variant: variant},
	)
}

// PolicyConfig names the operators of a policy.
type PolicyConfig struct {
	Selection         string // tournament | roulette
	Crossover         string // segment
	Mutation          string // swap | rotate
	MutationRate      float64
	RouletteWeighting string // literal | inverted
	RotateVariant     string // prefix | segment
}

// BuildPolicy resolves a PolicyConfig into a Policy.
func BuildPolicy(cfg PolicyConfig) (*Policy, error) {
	if cfg.MutationRate < 0 || cfg.MutationRate > 1 {
		return nil, fmt.Errorf("mutation rate must be within [0, 1], got %.4f", cfg.MutationRate)
	}

	var (
		selector Selector
		parts    []string
	)
	switch strings.ToLower(cfg.Selection) {
	case "", "tournament":
		selector = TournamentSelector{}
		parts = append(parts, "tournament")
	case "roulette":
		weighting, err := ParseRouletteWeighting(cfg.RouletteWeighting)
		if err != nil {
			return nil, err
		}
		selector = RouletteSelector{Weighting: weighting}
		parts = append(parts, "roulette-"+weighting.String())
	default:
		return nil, fmt.Errorf("invalid selection %q (use tournament or roulette)", cfg.Selection)
	}

	switch strings.ToLower(cfg.Crossover) {
	case "", "segment":
	default:
		return nil, fmt.Errorf("invalid crossover %q (use segment)", cfg.Crossover)
	}

	var mutator Mutator
	switch strings.ToLower(cfg.Mutation) {
	case "", "swap":
		mutator = SwapMutation{Rate: cfg.MutationRate}
		parts = append(parts, "swap")
	case "rotate":
		variant, err := ParseRotateVariant(cfg.RotateVariant)
		if err != nil {
			return nil, err
		}
		mutator = RotateMutation{Rate: cfg.MutationRate, Variant: variant}
		parts = append(parts, "rotate-"+variant.String())
	default:
		return nil, fmt.Errorf("invalid mutation %q (use swap or rotate)", cfg.Mutation)
	}

	name := fmt.Sprintf("%s(p=%g)", strings.Join(parts, "-"), cfg.MutationRate)
	return NewPolicy(name, selector, SegmentCrossover{}, mutator), nil
}
