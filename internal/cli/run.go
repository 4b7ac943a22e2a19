package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/dialsim"
	"github.com/aretw0/dialsim/internal/config"
	"github.com/aretw0/dialsim/internal/logging"
	"github.com/aretw0/dialsim/pkg/domain"
	"github.com/aretw0/dialsim/pkg/observability"
)

// RunOptions contains all the configuration for the run command.
// Empty string fields fall back to the config file.
type RunOptions struct {
	InputPath      string
	ConfigPath     string
	ConfigExplicit bool
	LogLevel       string
	Output         string
	MetricsFile    string
	Debug          bool

	Stdout io.Writer
	Stderr io.Writer
}

// Execute handles the run command: load config, simulate, print the trace and summary.
func Execute(ctx context.Context, opts RunOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	logger, err := createLogger(opts.Stderr, cfg.LogLevel, opts.Debug)
	if err != nil {
		return err
	}

	trace, err := createTrace(opts.Stdout, cfg.Output)
	if err != nil {
		return err
	}

	hooks := []domain.LifecycleHooks{traceHooks(trace, logger)}

	var metrics *observability.Metrics
	if cfg.MetricsFile != "" {
		metrics = observability.NewMetrics()
		hooks = append(hooks, metrics.Hooks())
	}

	logger.Debug("Starting simulation", "input", opts.InputPath, "output", string(cfg.Output))

	summary, err := dialsim.SimulateFile(ctx, opts.InputPath,
		dialsim.WithLogger(logger),
		dialsim.WithLifecycleHooks(combineHooks(hooks...)),
	)
	if err != nil {
		return err
	}

	if err := trace.Summary(summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	if metrics != nil {
		if err := metrics.WriteFile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		logger.Info("Metrics written", "path", cfg.MetricsFile)
	}

	return nil
}

func resolveConfig(opts RunOptions) (config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}

	cfg, err := config.Load(path, opts.ConfigExplicit)
	if err != nil {
		return cfg, err
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Output != "" {
		cfg.Output = config.OutputMode(opts.Output)
	}
	if opts.MetricsFile != "" {
		cfg.MetricsFile = opts.MetricsFile
	}

	return cfg, cfg.Validate()
}

func createLogger(w io.Writer, level string, debug bool) (*slog.Logger, error) {
	if debug {
		return logging.NewWithWriter(w, slog.LevelDebug), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, lvl), nil
}
