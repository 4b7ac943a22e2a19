package domain

const (
	// DialSize is the number of discrete positions on the dial (0..DialSize-1).
	DialSize = 100

	// StartPosition is where the dial points before the first turn.
	StartPosition = 50
)
