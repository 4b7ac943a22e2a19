package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/dialsim"
	"github.com/aretw0/dialsim/internal/config"
	"github.com/aretw0/dialsim/internal/presentation/tui"
	"github.com/aretw0/dialsim/pkg/domain"
	"golang.org/x/term"
)

// createTrace picks the trace renderer for the requested output mode.
func createTrace(w io.Writer, mode config.OutputMode) (tui.Trace, error) {
	if mode == config.OutputAuto {
		mode = config.OutputPlain
		if isTerminal(w) {
			mode = config.OutputColor
		}
	}

	switch mode {
	case config.OutputJSON:
		return tui.NewJSONTrace(w), nil
	case config.OutputColor:
		tui.PrintBanner(w, dialsim.Version)
		return tui.NewColorTrace(w, tui.NewRenderer("")), nil
	default:
		return tui.NewPlainTrace(w), nil
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func traceHooks(trace tui.Trace, logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTurn: func(ctx context.Context, e *domain.TurnEvent) {
			if err := trace.Turn(e); err != nil {
				logger.Warn("Failed to write trace", "turn", e.Turn.String(), "error", err)
			}
		},
	}
}

// combineHooks fans each event out to every non-nil callback, in order.
func combineHooks(all ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTurn: func(ctx context.Context, e *domain.TurnEvent) {
			for _, h := range all {
				if h.OnTurn != nil {
					h.OnTurn(ctx, e)
				}
			}
		},
		OnComplete: func(ctx context.Context, e *domain.CompleteEvent) {
			for _, h := range all {
				if h.OnComplete != nil {
					h.OnComplete(ctx, e)
				}
			}
		},
	}
}
