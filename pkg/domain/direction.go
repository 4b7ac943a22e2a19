package domain

import "fmt"

// Direction represents which way a turn rotates the dial.
type Direction int

const (
	// Right increases the dial position.
	Right Direction = iota
	// Left decreases the dial position.
	Left
)

// String returns the single-character symbol used in input files.
func (d Direction) String() string {
	switch d {
	case Right:
		return "R"
	case Left:
		return "L"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection maps an input symbol to a Direction.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case 'R':
		return Right, nil
	case 'L':
		return Left, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrMalformedDirection, r)
	}
}

// MarshalText encodes the direction as its input symbol.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
