package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTurn     EventType = "turn"
	EventComplete EventType = "complete"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// TurnEvent describes one applied turn.
type TurnEvent struct {
	EventBase
	Index              int    `json:"index"`
	Turn               Turn   `json:"turn"`
	From               int    `json:"from"`
	To                 int    `json:"to"`
	TraversalsThruZero uint64 `json:"traversals_thru_zero"`
}

// CompleteEvent is emitted once every turn has been applied.
type CompleteEvent struct {
	EventBase
	Summary Summary `json:"summary"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnTurn     func(context.Context, *TurnEvent)
	OnComplete func(context.Context, *CompleteEvent)
}
