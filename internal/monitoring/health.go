package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/ducminhle1904/permutation-ga/pkg/genetic"
)

var startTime = time.Now()

// HealthChecker tracks search progress for the health endpoint
type HealthChecker struct {
	mu             sync.RWMutex
	lastGeneration time.Time
	generations    int
	bestCost       float64
	running        bool
	errors         []string
}

type HealthStatus struct {
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	LastGeneration time.Time `json:"last_generation"`
	Generations    int       `json:"generations"`
	BestCost       float64   `json:"best_cost"`
	Running        bool      `json:"running"`
	Uptime         string    `json:"uptime"`
	Errors         []string  `json:"errors,omitempty"`
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		errors: make([]string, 0),
	}
}

// OnGeneration implements genetic.Observer
func (h *HealthChecker) OnGeneration(stats genetic.GenerationStats) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastGeneration = time.Now()
	h.generations++
	h.bestCost = stats.BestCost
}

func (h *HealthChecker) SetRunning(running bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.running = running
}

func (h *HealthChecker) RecordError(err error) {
	if err == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, err.Error())
}

func (h *HealthChecker) Status() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "healthy"
	if h.running && !h.lastGeneration.IsZero() && time.Since(h.lastGeneration) > time.Minute {
		status = "degraded"
	}
	if len(h.errors) > 0 {
		status = "unhealthy"
	}

	return HealthStatus{
		Status:         status,
		Timestamp:      time.Now(),
		LastGeneration: h.lastGeneration,
		Generations:    h.generations,
		BestCost:       h.bestCost,
		Running:        h.running,
		Uptime:         time.Since(startTime).String(),
		Errors:         append([]string(nil), h.errors...),
	}
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	health := h.Status()

	w.Header().Set("Content-Type", "application/json")
	switch health.Status {
	case "degraded":
		w.WriteHeader(http.StatusServiceUnavailable)
	case "unhealthy":
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(health)
}
