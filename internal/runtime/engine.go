package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/dialsim/pkg/domain"
)

// Engine folds the rotation arithmetic over an ordered list of turns.
type Engine struct {
	start  int
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used for per-turn diagnostics.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithStartPosition overrides the initial dial position (default: domain.StartPosition).
func WithStartPosition(pos int) EngineOption {
	return func(e *Engine) {
		e.start = pos
	}
}

// NewEngine creates a new engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		start:  domain.StartPosition,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Step applies a single turn to the dial and logs the transition.
func (e *Engine) Step(ctx context.Context, turn domain.Turn, dial int) (domain.TurnResult, error) {
	res, err := ApplyTurn(turn, dial)
	if err != nil {
		e.logger.ErrorContext(ctx, "Turn failed", "turn", turn.String(), "dial", dial, "error", err)
		return domain.TurnResult{}, err
	}

	e.logger.DebugContext(ctx, "Turn applied",
		"turn", turn.String(),
		"from", dial,
		"to", res.Dial,
		"traversals_thru_zero", res.TraversalsThruZero,
	)
	return res, nil
}

// Run applies every turn in order, starting from the configured position,
// and returns the accumulated counters. Any error aborts the run.
func (e *Engine) Run(ctx context.Context, turns []domain.Turn) (domain.Summary, error) {
	summary := domain.Summary{FinalDial: e.start}
	dial := e.start

	for i, turn := range turns {
		res, err := e.Step(ctx, turn, dial)
		if err != nil {
			return domain.Summary{}, fmt.Errorf("turn %d (%s): %w", i+1, turn, err)
		}

		if e.hooks.OnTurn != nil {
			e.hooks.OnTurn(ctx, &domain.TurnEvent{
				EventBase:          domain.EventBase{Timestamp: time.Now(), Type: domain.EventTurn},
				Index:              i,
				Turn:               turn,
				From:               dial,
				To:                 res.Dial,
				TraversalsThruZero: res.TraversalsThruZero,
			})
		}

		dial = res.Dial
		if dial == 0 {
			summary.ZerosAtEndOfRotation++
		}
		summary.ZerosDuringRotation += res.TraversalsThruZero
		summary.Turns++
	}
	summary.FinalDial = dial

	if e.hooks.OnComplete != nil {
		e.hooks.OnComplete(ctx, &domain.CompleteEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventComplete},
			Summary:   summary,
		})
	}

	e.logger.InfoContext(ctx, "Simulation complete",
		"turns", summary.Turns,
		"final_dial", summary.FinalDial,
		"zeros_at_end_of_rotation", summary.ZerosAtEndOfRotation,
		"zeros_during_rotation", summary.ZerosDuringRotation,
	)
	return summary, nil
}
