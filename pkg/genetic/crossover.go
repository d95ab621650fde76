package genetic

import (
	"fmt"
	"math/rand"

	gaerrors "github.com/ducminhle1904/permutation-ga/internal/errors"
)

// SegmentCrossover keeps a random middle segment of each parent and fills
// the remaining positions from the other parent, repairing duplicates
// through the segment mapping so both children stay permutations.
type SegmentCrossover struct{}

// Cross draws cut1 in [0, N-1] and cut2 in [cut1+1, N] and crosses the parents
func (SegmentCrossover) Cross(rng *rand.Rand, father, mother Individual) ([]Individual, error) {
	if err := checkParents(father, mother); err != nil {
		return nil, err
	}
	n := len(father)
	cut1 := rng.Intn(n)
	cut2 := cut1 + 1 + rng.Intn(n-cut1)
	return CrossAt(father, mother, cut1, cut2)
}

// CrossAt crosses father and mother preserving positions [cut1, cut2).
func CrossAt(father, mother Individual, cut1, cut2 int) ([]Individual, error) {
	if err := checkParents(father, mother); err != nil {
		return nil, err
	}
	n := len(father)
	if cut1 < 0 || cut2 > n || cut1 >= cut2 {
		return nil, gaerrors.NewValidationError("SegmentCrossover", "CrossAt",
			fmt.Sprintf("invalid cut points [%d, %d) for length %d", cut1, cut2, n))
	}

	fatherPos := positions(father)
	motherPos := positions(mother)
	fatherSeg := segmentSet(father, cut1, cut2)
	motherSeg := segmentSet(mother, cut1, cut2)

	child1, child2 := father.Clone(), mother.Clone()
	for i := 0; i < n; i++ {
		if i >= cut1 && i < cut2 {
			continue
		}
		child1[i], child2[i] = child2[i], child1[i]
		for fatherSeg[child1[i]] {
			child1[i] = mother[fatherPos[child1[i]]]
		}
		for motherSeg[child2[i]] {
			child2[i] = father[motherPos[child2[i]]]
		}
	}
	return []Individual{child1, child2}, nil
}

func checkParents(father, mother Individual) error {
	if len(father) == 0 || len(father) != len(mother) {
		return gaerrors.NewValidationError("SegmentCrossover", "Cross",
			fmt.Sprintf("parents must be non-empty and of equal length, got %d and %d", len(father), len(mother)))
	}
	return nil
}

func positions(ind Individual) map[int]int {
	pos := make(map[int]int, len(ind))
	for i, v := range ind {
		pos[v] = i
	}
	return pos
}

func segmentSet(ind Individual, from, to int) map[int]bool {
	set := make(map[int]bool, to-from)
	for _, v := range ind[from:to] {
		set[v] = true
	}
	return set
}
