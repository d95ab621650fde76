package monitoring

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/permutation-ga/pkg/genetic"
)

func TestHealthChecker(t *testing.T) {
	h := NewHealthChecker()
	h.SetRunning(true)
	h.OnGeneration(genetic.GenerationStats{Generation: 1, BestCost: 3})
	h.OnGeneration(genetic.GenerationStats{Generation: 2, BestCost: 1})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, 2, status.Generations)
	assert.Equal(t, 1.0, status.BestCost)
	assert.True(t, status.Running)

	h.RecordError(errors.New("boom"))
	h.RecordError(nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, []string{"boom"}, h.Status().Errors)
}
