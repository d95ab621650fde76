package genetic

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPolicy(t *testing.T) {
	tests := []struct {
		name     string
		cfg      PolicyConfig
		wantName string
		wantErr  bool
	}{
		{
			name:     "defaults",
			cfg:      PolicyConfig{MutationRate: 0.7},
			wantName: "tournament-swap(p=0.7)",
		},
		{
			name:     "roulette rotate",
			cfg:      PolicyConfig{Selection: "roulette", Mutation: "rotate", MutationRate: 0.5, RouletteWeighting: "inverted", RotateVariant: "segment"},
			wantName: "roulette-inverted-rotate-segment(p=0.5)",
		},
		{name: "bad selection", cfg: PolicyConfig{Selection: "rank"}, wantErr: true},
		{name: "bad crossover", cfg: PolicyConfig{Crossover: "cycle"}, wantErr: true},
		{name: "bad mutation", cfg: PolicyConfig{Mutation: "scramble"}, wantErr: true},
		{name: "bad weighting", cfg: PolicyConfig{Selection: "roulette", RouletteWeighting: "x"}, wantErr: true},
		{name: "bad variant", cfg: PolicyConfig{Mutation: "rotate", RotateVariant: "x"}, wantErr: true},
		{name: "rate out of range", cfg: PolicyConfig{MutationRate: 1.5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := BuildPolicy(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, policy.Name())
		})
	}
}

func TestNamedPolicies(t *testing.T) {
	assert.Equal(t, "tournament-swap(p=0.15)", TournamentSwapPolicy(0.15).Name())
	assert.Equal(t, "roulette-literal-rotate-prefix(p=0.5)",
		RouletteRotatePolicy(0.5, WeightingLiteral, RotatePrefix).Name())
}

func TestPolicy_MissingOperatorsFailFast(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	policy := NewPolicy("empty", nil, nil, nil)

	_, _, err := policy.Select(rng, Population{{0, 1}}, []float64{1})
	assert.True(t, errors.Is(err, ErrUnimplemented))
	_, err = policy.Cross(rng, Individual{0, 1}, Individual{1, 0})
	assert.True(t, errors.Is(err, ErrUnimplemented))
	_, err = policy.Mutate(rng, Population{{0, 1}})
	assert.True(t, errors.Is(err, ErrUnimplemented))
}
