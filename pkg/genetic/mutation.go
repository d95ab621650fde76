package genetic

import (
	"fmt"
	"math/rand"
	"strings"
)

// SwapMutation gives every position an independent chance Rate of being
// swapped with a uniformly drawn position (possibly itself).
type SwapMutation struct {
	Rate float64
}

// Mutate applies swap mutation to a copy of every individual
func (m SwapMutation) Mutate(rng *rand.Rand, population Population) (Population, error) {
	mutated := make(Population, 0, len(population))
	for _, ind := range population {
		out := ind.Clone()
		for i := range out {
			if rng.Float64() < m.Rate {
				k := rng.Intn(len(out))
				out[i], out[k] = out[k], out[i]
			}
		}
		mutated = append(mutated, out)
	}
	return mutated, nil
}

// RotateVariant selects the range rotated by RotateMutation.
type RotateVariant int

const (
	// RotatePrefix rotates [0, pMajor] left by one step; pMinor only
	// decides whether the mutation happens.
	RotatePrefix RotateVariant = iota
	// RotateSegment rotates [pMinor, pMajor] left by one step, moving the
	// value at pMinor to pMajor.
	RotateSegment
)

func (v RotateVariant) String() string {
	switch v {
	case RotatePrefix:
		return "prefix"
	case RotateSegment:
		return "segment"
	default:
		return fmt.Sprintf("RotateVariant(%d)", int(v))
	}
}

// ParseRotateVariant converts a configuration string to a RotateVariant.
func ParseRotateVariant(s string) (RotateVariant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "prefix":
		return RotatePrefix, nil
	case "segment":
		return RotateSegment, nil
	default:
		return 0, fmt.Errorf("invalid rotate variant %q (use prefix or segment)", s)
	}
}

// RotateMutation mutates each individual with probability Rate by picking
// two distinct positions and rotating a range ending at the larger one.
type RotateMutation struct {
	Rate    float64
	Variant RotateVariant
}

// Mutate applies rotation mutation to a copy of every individual
func (m RotateMutation) Mutate(rng *rand.Rand, population Population) (Population, error) {
	mutated := make(Population, 0, len(population))
	for _, ind := range population {
		out := ind.Clone()
		if rng.Float64() < m.Rate && len(out) >= 2 {
			pMinor, pMajor := distinctPositions(rng, len(out))
			m.rotate(out, pMinor, pMajor)
		}
		mutated = append(mutated, out)
	}
	return mutated, nil
}

// RotateAt applies the rotation for the given positions to a copy of ind.
func (m RotateMutation) RotateAt(ind Individual, pMinor, pMajor int) Individual {
	out := ind.Clone()
	if pMinor > pMajor {
		pMinor, pMajor = pMajor, pMinor
	}
	m.rotate(out, pMinor, pMajor)
	return out
}

func (m RotateMutation) rotate(ind Individual, pMinor, pMajor int) {
	start := 0
	if m.Variant == RotateSegment {
		start = pMinor
	}
	for j := start; j < pMajor; j++ {
		ind[j], ind[j+1] = ind[j+1], ind[j]
	}
}

// distinctPositions resamples until the two positions differ and returns
// them ordered.
func distinctPositions(rng *rand.Rand, n int) (int, int) {
	a, b := 0, 0
	for a == b {
		a = rng.Intn(n)
		b = rng.Intn(n)
	}
	if a > b {
		a, b = b, a
	}
	return a, b
}
