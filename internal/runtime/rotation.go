package runtime

import "github.com/aretw0/dialsim/pkg/domain"

// ApplyTurn rotates the dial by one turn and counts how often it passes through
// or lands on zero. The dial must be in [0, DialSize) on input and is guaranteed
// to be on output; otherwise an *domain.InvariantError is returned.
func ApplyTurn(turn domain.Turn, dial int) (domain.TurnResult, error) {
	if !inRange(int64(dial)) {
		return domain.TurnResult{}, &domain.InvariantError{Turn: turn, From: dial, To: dial}
	}

	const size = int64(domain.DialSize)
	start := int64(dial)
	ticks := int64(turn.Ticks)

	var raw, next int64
	var traversals uint64

	switch turn.Direction {
	case domain.Right:
		raw = start + ticks
		traversals = uint64(raw / size)
		next = raw % size

	case domain.Left:
		raw = start - ticks
		if raw <= 0 {
			traversals = 1 + uint64(-raw/size)
			// Leaving zero is not a crossing; the previous turn already counted it.
			if start == 0 {
				traversals--
			}
		}

		switch {
		case raw > 0:
			next = raw
		case raw == 0:
			next = 0
		default:
			next = size - (-raw % size)
			if next == size {
				next = 0
			}
		}

	default:
		return domain.TurnResult{}, domain.ErrMalformedDirection
	}

	if !inRange(next) {
		return domain.TurnResult{}, &domain.InvariantError{Turn: turn, From: dial, To: int(next)}
	}

	return domain.TurnResult{Dial: int(next), TraversalsThruZero: traversals}, nil
}

func inRange(pos int64) bool {
	return pos >= 0 && pos < domain.DialSize
}
