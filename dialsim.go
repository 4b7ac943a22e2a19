package dialsim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/dialsim/internal/compiler"
	"github.com/aretw0/dialsim/internal/runtime"
	"github.com/aretw0/dialsim/pkg/domain"
)

// Version is the released version of the dialsim module.
var Version = "v0.1.0"

type settings struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// Option defines a functional option for configuring a simulation.
type Option func(*settings)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *settings) {
		s.hooks = hooks
	}
}

// Simulate parses every instruction from r and then folds them over a dial
// starting at domain.StartPosition. Nothing is applied if any line is malformed.
func Simulate(ctx context.Context, r io.Reader, opts ...Option) (domain.Summary, error) {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}

	turns, err := compiler.NewParser().Parse(r)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("failed to parse instructions: %w", err)
	}

	engine := runtime.NewEngine(
		runtime.WithLogger(s.logger),
		runtime.WithLifecycleHooks(s.hooks),
	)
	return engine.Run(ctx, turns)
}

// SimulateFile is Simulate over the contents of the file at path.
func SimulateFile(ctx context.Context, path string, opts ...Option) (domain.Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	return Simulate(ctx, f, opts...)
}
