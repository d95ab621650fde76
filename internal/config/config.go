package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	pkgconfig "github.com/ducminhle1904/permutation-ga/pkg/config"
)

// Config holds process-level settings read from the environment
type Config struct {
	Environment string
	LogLevel    string

	Paths struct {
		LogDir     string
		ResultsDir string
	}

	Monitoring struct {
		PrometheusPort int
		// GenerationLogInterval writes every n-th generation to the session log
		GenerationLogInterval int
	}

	Timeout time.Duration
}

// LoadDotEnv loads the given .env files into the process environment.
// Missing files are skipped; existing variables are not overwritten.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

func Load() *Config {
	cfg := &Config{
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Timeout:     getEnvDuration("GA_TIMEOUT", 0),
	}

	cfg.Paths.LogDir = getEnv("LOG_DIR", "logs")
	cfg.Paths.ResultsDir = getEnv("RESULTS_DIR", pkgconfig.ResultsDir)

	cfg.Monitoring.PrometheusPort = getEnvInt("METRICS_PORT", 0)
	cfg.Monitoring.GenerationLogInterval = getEnvInt("GA_LOG_EVERY", 1)

	return cfg
}

// ApplyOverrides overlays GA_* environment variables onto a search configuration
func ApplyOverrides(cfg *pkgconfig.SearchConfig) {
	cfg.Problem.Name = getEnv("GA_PROBLEM", cfg.Problem.Name)
	cfg.Problem.Size = getEnvInt("GA_SIZE", cfg.Problem.Size)
	cfg.Problem.MaxDistance = getEnvInt("GA_MAX_DISTANCE", cfg.Problem.MaxDistance)

	cfg.Search.PopulationSize = getEnvInt("GA_POPULATION", cfg.Search.PopulationSize)
	cfg.Search.Generations = getEnvInt("GA_GENERATIONS", cfg.Search.Generations)
	cfg.Search.Elitism = getEnvBool("GA_ELITISM", cfg.Search.Elitism)
	cfg.Search.FitnessMode = getEnv("GA_FITNESS", cfg.Search.FitnessMode)

	cfg.Policy.Selection = getEnv("GA_SELECTION", cfg.Policy.Selection)
	cfg.Policy.Mutation = getEnv("GA_MUTATION", cfg.Policy.Mutation)
	cfg.Policy.MutationRate = getEnvFloat("GA_MUTATION_RATE", cfg.Policy.MutationRate)
	cfg.Policy.RouletteWeighting = getEnv("GA_ROULETTE_WEIGHTING", cfg.Policy.RouletteWeighting)
	cfg.Policy.RotateVariant = getEnv("GA_ROTATE_VARIANT", cfg.Policy.RotateVariant)

	cfg.Run.Seed = getEnvInt64("GA_SEED", cfg.Run.Seed)
	cfg.Run.Trials = getEnvInt("GA_TRIALS", cfg.Run.Trials)
	cfg.Run.Workers = getEnvInt("GA_WORKERS", cfg.Run.Workers)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(strings.ToLower(val)); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
