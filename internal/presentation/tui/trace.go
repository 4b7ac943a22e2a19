package tui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/dialsim/pkg/domain"
	"github.com/muesli/termenv"
)

// Trace prints the per-turn trace and the final counters.
type Trace interface {
	Turn(e *domain.TurnEvent) error
	Summary(s domain.Summary) error
}

// PlainTrace writes uncolored, line-oriented output.
type PlainTrace struct {
	w io.Writer
}

// NewPlainTrace creates a plain trace writing to w.
func NewPlainTrace(w io.Writer) *PlainTrace {
	return &PlainTrace{w: w}
}

func (t *PlainTrace) Turn(e *domain.TurnEvent) error {
	_, err := fmt.Fprintf(t.w, "turn: %s, dial: %d -> %d, traversals_thru_zero: %d\n",
		e.Turn, e.From, e.To, e.TraversalsThruZero)
	return err
}

func (t *PlainTrace) Summary(s domain.Summary) error {
	_, err := fmt.Fprintf(t.w, "Zeros at end of rotation: %d\nZeros during and at end of rotation: %d\n",
		s.ZerosAtEndOfRotation, s.ZerosDuringRotation)
	return err
}

// ColorTrace styles turn lines with termenv and renders the summary as markdown.
type ColorTrace struct {
	out    *termenv.Output
	render func(string) (string, error)
}

// NewColorTrace creates a colored trace. render turns markdown into terminal text;
// pass NewRenderer("") for the auto-detected glamour style.
func NewColorTrace(w io.Writer, render func(string) (string, error), opts ...termenv.OutputOption) *ColorTrace {
	return &ColorTrace{
		out:    termenv.NewOutput(w, opts...),
		render: render,
	}
}

func (t *ColorTrace) Turn(e *domain.TurnEvent) error {
	dir := t.out.String(e.Turn.String()).Bold().Foreground(t.out.Color("#818cf8"))
	to := t.out.String(fmt.Sprintf("%d", e.To))
	if e.To == 0 {
		to = to.Bold().Foreground(t.out.Color("#f472b6"))
	}
	crossings := t.out.String(fmt.Sprintf("%d", e.TraversalsThruZero))
	if e.TraversalsThruZero > 0 {
		crossings = crossings.Foreground(t.out.Color("#fb7185"))
	} else {
		crossings = crossings.Faint()
	}

	_, err := fmt.Fprintf(t.out, "turn: %s, dial: %d -> %s, traversals_thru_zero: %s\n",
		dir, e.From, to, crossings)
	return err
}

func (t *ColorTrace) Summary(s domain.Summary) error {
	md := fmt.Sprintf(`## Summary

| Counter | Value |
| --- | --- |
| Turns | %d |
| Final dial | %d |
| Zeros at end of rotation | %d |
| Zeros during and at end of rotation | %d |
`, s.Turns, s.FinalDial, s.ZerosAtEndOfRotation, s.ZerosDuringRotation)

	rendered, err := t.render(md)
	if err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	_, err = io.WriteString(t.out, rendered)
	return err
}

// JSONTrace writes one JSON object per line (NDJSON).
type JSONTrace struct {
	enc *json.Encoder
}

// NewJSONTrace creates an NDJSON trace writing to w.
func NewJSONTrace(w io.Writer) *JSONTrace {
	return &JSONTrace{enc: json.NewEncoder(w)}
}

func (t *JSONTrace) Turn(e *domain.TurnEvent) error {
	return t.enc.Encode(e)
}

type summaryLine struct {
	Type string `json:"type"`
	domain.Summary
}

func (t *JSONTrace) Summary(s domain.Summary) error {
	return t.enc.Encode(summaryLine{Type: "summary", Summary: s})
}
