package domain

import "strconv"

// Turn is a single rotation instruction.
type Turn struct {
	Direction Direction `json:"direction"`
	Ticks     uint32    `json:"ticks"`
}

// String encodes the turn the same way it appears in an input file (e.g. "R1000").
func (t Turn) String() string {
	return t.Direction.String() + strconv.FormatUint(uint64(t.Ticks), 10)
}

// TurnResult is what the engine produces for one turn.
type TurnResult struct {
	// Dial is the position after the turn, always in [0, DialSize).
	Dial int `json:"dial"`

	// TraversalsThruZero counts how often the dial passed through or landed on 0.
	TraversalsThruZero uint64 `json:"traversals_thru_zero"`
}
