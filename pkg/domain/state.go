package domain

// Summary holds the counters accumulated over a whole run.
type Summary struct {
	// Turns is the number of instructions applied.
	Turns int `json:"turns"`

	// FinalDial is the dial position after the last turn.
	FinalDial int `json:"final_dial"`

	// ZerosAtEndOfRotation counts turns that left the dial exactly on 0.
	ZerosAtEndOfRotation uint64 `json:"zeros_at_end_of_rotation"`

	// ZerosDuringRotation sums every traversal through zero, end-of-turn landings included.
	ZerosDuringRotation uint64 `json:"zeros_during_rotation"`
}
