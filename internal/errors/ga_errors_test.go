package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnimplementedError(t *testing.T) {
	err := NewUnimplementedError("selection", "Select")

	assert.True(t, stderrors.Is(err, ErrUnimplemented))
	assert.True(t, err.IsFatal())
	assert.Equal(t, ErrorCategoryUnimplemented, err.Category)
	assert.Contains(t, err.Error(), "[UNIMPLEMENTED:selection] Select")
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, ErrorCategoryIO, "reporting", "Write"))

	base := fmt.Errorf("disk full")
	err := WrapError(base, ErrorCategoryIO, "reporting", "Write").WithContext("path", "out.xlsx")
	assert.Equal(t, base, err.Unwrap())
	assert.Equal(t, "out.xlsx", err.Context["path"])
	assert.False(t, err.IsFatal())
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCategory
	}{
		{"unimplemented", fmt.Errorf("wrapped: %w", ErrUnimplemented), ErrorCategoryUnimplemented},
		{"missing file", fmt.Errorf("open x.json: no such file or directory"), ErrorCategoryIO},
		{"validation", fmt.Errorf("population size must be at least 2"), ErrorCategoryValidation},
		{"other", fmt.Errorf("cost overflow"), ErrorCategoryProblem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CategorizeError(tt.err, "engine", "Search")
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Category)
		})
	}

	existing := NewConfigurationError("engine", "Search", "bad")
	assert.Same(t, existing, CategorizeError(fmt.Errorf("ctx: %w", existing), "x", "y"))
	assert.Nil(t, CategorizeError(nil, "x", "y"))
}

func TestErrorStats(t *testing.T) {
	stats := NewErrorStats(2)
	stats.RecordError(NewValidationError("a", "b", "c"))
	stats.RecordError(NewUnimplementedError("a", "b"))
	stats.RecordError(NewUnimplementedError("a", "b"))
	stats.RecordError(nil)

	assert.Equal(t, 3, stats.TotalErrors)
	assert.Len(t, stats.RecentErrors, 2)
	assert.InDelta(t, 2.0/3.0, stats.GetErrorRate(ErrorCategoryUnimplemented), 1e-9)
	assert.True(t, stats.HasRecentErrors(ErrorCategoryUnimplemented, 2))
	assert.False(t, stats.HasRecentErrors(ErrorCategoryValidation, 1))
}
