package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ducminhle1904/permutation-ga/cmd/common"
	"github.com/ducminhle1904/permutation-ga/internal/benchmark"
	internalconfig "github.com/ducminhle1904/permutation-ga/internal/config"
	gaerrors "github.com/ducminhle1904/permutation-ga/internal/errors"
	"github.com/ducminhle1904/permutation-ga/internal/logger"
	"github.com/ducminhle1904/permutation-ga/internal/monitoring"
	"github.com/ducminhle1904/permutation-ga/pkg/config"
	"github.com/ducminhle1904/permutation-ga/pkg/genetic"
	"github.com/ducminhle1904/permutation-ga/pkg/reporting"
)

const AppName = "GA Search"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout))
}

// run executes the command and returns its exit code
func run(ctx context.Context, args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("ga-search", flag.ContinueOnError)
	fs.SetOutput(stdout)
	flags := NewSearchFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := common.NewLogger()
	log.Out = stdout

	if common.CheckHelpAndVersion(stdout, AppName, fs, flags.CommonFlags, usage()) {
		return 0
	}

	if err := common.NewEnvLoader(log).LoadEnvFile(*flags.EnvFile); err != nil {
		log.Warn("Continuing without env file: %v", err)
	}
	env := internalconfig.Load()
	log.Level = common.ParseLogLevel(env.LogLevel)
	common.SetupLogger(log, flags.CommonFlags)

	if err := flags.Validate(); err != nil {
		log.Error("%v", err)
		return 2
	}

	cfg, err := loadSearchConfig(fs, flags)
	if err != nil {
		log.Error("Configuration error: %v", err)
		return 1
	}

	if err := runSearch(ctx, cfg, env, flags, log, stdout); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}

// loadSearchConfig applies defaults, config file, environment and set flags in that order
func loadSearchConfig(fs *flag.FlagSet, flags *SearchFlags) (*config.SearchConfig, error) {
	manager := config.NewSearchConfigManager()

	cfg, err := manager.LoadConfig(*flags.ConfigFile)
	if err != nil {
		return nil, err
	}
	internalconfig.ApplyOverrides(cfg)
	flags.ApplyTo(fs, cfg)

	if err := manager.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if *flags.SaveConfig != "" {
		if err := manager.SaveConfig(cfg, *flags.SaveConfig); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func runSearch(ctx context.Context, cfg *config.SearchConfig, env *internalconfig.Config, flags *SearchFlags, log *common.Logger, stdout io.Writer) error {
	problem, err := cfg.BuildProblem()
	if err != nil {
		return err
	}
	params, err := cfg.SearchParams()
	if err != nil {
		return gaerrors.WrapError(err, gaerrors.ErrorCategoryConfiguration, "cli", "SearchParams")
	}
	policy, err := genetic.BuildPolicy(cfg.PolicyConfig())
	if err != nil {
		return gaerrors.WrapError(err, gaerrors.ErrorCategoryConfiguration, "cli", "BuildPolicy")
	}

	log.Header(AppName)
	log.Info("Problem: %s | Policy: %s", problem.Name(), policy.Name())
	log.Info("Population: %d | Generations: %d | Fitness: %s | Elitism: %t",
		params.PopulationSize, params.Generations, params.FitnessMode, params.Elitism)
	log.Info("Trials: %d | Seed: %d | Workers: %d", cfg.Run.Trials, cfg.Run.Seed, cfg.Run.Workers)

	health := monitoring.NewHealthChecker()
	port := *flags.MetricsPort
	if port == 0 {
		port = env.Monitoring.PrometheusPort
	}
	if port > 0 {
		shutdown := startMetricsServer(port, health, log)
		defer shutdown()
	}

	var fileLog *logger.Logger
	if !*flags.NoFileLog && !*flags.ConsoleOnly {
		logDir := *flags.LogDir
		if logDir == "" {
			logDir = env.Paths.LogDir
		}
		fileLog, err = logger.NewLogger(logDir, problem.Name(), policy.Name())
		if err != nil {
			log.Warn("File logging disabled: %v", err)
		} else {
			defer fileLog.Close()
			fileLog.SetGenerationInterval(env.Monitoring.GenerationLogInterval)
			fileLog.LogSearchStart(params, cfg.Run.Trials, cfg.Run.Seed)
			log.Debug("Logging to %s", fileLog.GetLogPath())
		}
	}

	target, hasTarget := cfg.Target()
	metricsObserver := monitoring.Default.Observer(problem.Name(), policy.Name())
	runner := &benchmark.Runner{
		Problem:   problem,
		Operators: policy,
		Params:    params,
		Trials:    cfg.Run.Trials,
		Workers:   cfg.Run.Workers,
		BaseSeed:  cfg.Run.Seed,
		Target:    target,
		HasTarget: hasTarget,
		Observers: func(job benchmark.TrialJob) []genetic.Observer {
			observers := []genetic.Observer{metricsObserver, health}
			// generation lines of parallel trials would interleave
			if fileLog != nil && cfg.Run.Trials == 1 {
				observers = append(observers, fileLog)
			}
			return observers
		},
		OnTrial: func(trial benchmark.Trial, completed, total int) {
			monitoring.Default.RecordTrial(problem.Name(), policy.Name(), trial.Solved, trial.Duration)
			if trial.Err != nil {
				category := gaerrors.CategorizeError(trial.Err, "benchmark", "Trial").Category
				monitoring.Default.RecordError(string(category))
				health.RecordError(trial.Err)
				if fileLog != nil {
					fileLog.LogError(fmt.Sprintf("trial %d", trial.Index), trial.Err)
				}
			} else if fileLog != nil {
				fileLog.LogTrial(trial.Index, trial.Seed, trial.Cost, trial.Solved, trial.Duration)
			}
			log.Progress("Trial %d/%d (seed %d) cost %.4f in %s", completed, total, trial.Seed, trial.Cost,
				common.FormatDuration(trial.Duration))
		},
	}

	if env.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, env.Timeout)
		defer cancel()
	}

	health.SetRunning(true)
	result, runErr := runner.Run(ctx)
	health.SetRunning(false)
	if result == nil {
		return runErr
	}
	if runErr != nil {
		log.Warn("Run interrupted after %d/%d trials: %v", len(result.Trials), cfg.Run.Trials, runErr)
		if fileLog != nil {
			fileLog.LogWarning("run", "interrupted after %d/%d trials: %v", len(result.Trials), cfg.Run.Trials, runErr)
		}
	}

	log.Section("Results")
	s := result.Summary
	if fileLog != nil {
		fileLog.LogSummary(s.Completed, s.Solved, s.MeanCost, s.MinCost, s.MaxCost, s.Elapsed)
	}

	report := &reporting.RunReport{
		Problem: problem.Name(),
		Policy:  policy.Name(),
		Params:  params,
		Result:  result,
		Config:  cfg,
	}
	reporter := reporting.NewReporter(stdout, env.Paths.ResultsDir)
	if !log.SilentMode {
		if *flags.ShowTrials {
			reporter.OutputTrials(report)
		}
		reporter.OutputSummary(report)
	}

	if !*flags.ConsoleOnly {
		dir := *flags.OutputDir
		if dir == "" {
			dir = filepath.Join(env.Paths.ResultsDir, cfg.OutputName())
		}
		written, err := reporter.WriteAll(report, dir, reporting.ReportingConfig{
			EnableFiles:     true,
			OutputDirectory: dir,
			ExcelEnabled:    true,
			CSVEnabled:      true,
			JSONEnabled:     true,
		})
		if err != nil {
			return gaerrors.NewIOError("reporting", "WriteAll", err)
		}
		for _, path := range written {
			log.Quiet("wrote %s", path)
		}
	}

	if s.Completed == 0 {
		if len(result.Errors.RecentErrors) > 0 {
			return fmt.Errorf("all trials failed: %w", result.Errors.RecentErrors[len(result.Errors.RecentErrors)-1])
		}
		if runErr != nil {
			return fmt.Errorf("no trial completed: %w", runErr)
		}
		return errors.New("no trial completed")
	}

	log.Success("Solved %d/%d trials (%s), best cost %.4f", s.Solved, s.Completed,
		common.FormatPercent(s.SuccessRate, 1), s.MinCost)
	return nil
}

// startMetricsServer serves /metrics and /health until the returned func is called
func startMetricsServer(port int, health *monitoring.HealthChecker, log *common.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", monitoring.NewMetricsHandler())
	mux.Handle("/health", health)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn("Metrics server stopped: %v", err)
		}
	}()
	log.Info("Metrics on http://localhost:%d/metrics", port)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}
}
