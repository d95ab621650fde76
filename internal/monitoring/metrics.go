package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ducminhle1904/permutation-ga/pkg/genetic"
)

// SearchMetrics holds the Prometheus collectors of the GA engine
type SearchMetrics struct {
	generationsTotal *prometheus.CounterVec
	bestCost         *prometheus.GaugeVec
	meanCost         *prometheus.GaugeVec
	populationSize   *prometheus.GaugeVec
	searchDuration   *prometheus.HistogramVec
	trialsTotal      *prometheus.CounterVec
	errorsTotal      *prometheus.CounterVec
}

// NewSearchMetrics creates unregistered collectors
func NewSearchMetrics() *SearchMetrics {
	return &SearchMetrics{
		// Generational loop metrics
		generationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ga_generations_total",
				Help: "Total number of generations evaluated",
			},
			[]string{"problem", "policy"},
		),
		bestCost: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ga_best_cost",
				Help: "Minimum cost in the latest generation",
			},
			[]string{"problem", "policy"},
		),
		meanCost: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ga_mean_cost",
				Help: "Mean cost in the latest generation",
			},
			[]string{"problem", "policy"},
		),
		populationSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ga_population_size",
				Help: "Population size at the end of the latest generation",
			},
			[]string{"problem", "policy"},
		),

		// Search/trial metrics
		searchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ga_search_duration_seconds",
				Help:    "Distribution of search durations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"problem", "policy"},
		),
		trialsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ga_trials_total",
				Help: "Total number of benchmark trials by outcome",
			},
			[]string{"problem", "policy", "outcome"},
		),

		// Error metrics
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ga_errors_total",
				Help: "Total number of errors",
			},
			[]string{"type"},
		),
	}
}

// Register registers every collector with reg
func (m *SearchMetrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.generationsTotal,
		m.bestCost,
		m.meanCost,
		m.populationSize,
		m.searchDuration,
		m.trialsTotal,
		m.errorsTotal,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Observer returns a generation observer labelled with problem and policy
func (m *SearchMetrics) Observer(problem, policy string) genetic.Observer {
	return genetic.ObserverFunc(func(s genetic.GenerationStats) {
		m.generationsTotal.WithLabelValues(problem, policy).Inc()
		m.bestCost.WithLabelValues(problem, policy).Set(s.BestCost)
		m.meanCost.WithLabelValues(problem, policy).Set(s.MeanCost)
		m.populationSize.WithLabelValues(problem, policy).Set(float64(s.PopulationSize))
	})
}

// RecordTrial records a finished trial
func (m *SearchMetrics) RecordTrial(problem, policy string, solved bool, duration time.Duration) {
	outcome := "unsolved"
	if solved {
		outcome = "solved"
	}
	m.trialsTotal.WithLabelValues(problem, policy, outcome).Inc()
	m.searchDuration.WithLabelValues(problem, policy).Observe(duration.Seconds())
}

// RecordError records an error metric
func (m *SearchMetrics) RecordError(errorType string) {
	m.errorsTotal.WithLabelValues(errorType).Inc()
}

// Default is registered with the default Prometheus registry
var Default = NewSearchMetrics()

func init() {
	if err := Default.Register(prometheus.DefaultRegisterer); err != nil {
		panic(err)
	}
}

// MetricsHandler handles Prometheus metrics endpoint
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}
