package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name    string
		in      rune
		want    Direction
		wantErr bool
	}{
		{name: "Right", in: 'R', want: Right},
		{name: "Left", in: 'L', want: Left},
		{name: "Lowercase is rejected", in: 'r', wantErr: true},
		{name: "Unknown symbol", in: 'X', wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrMalformedDirection), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTurn_String(t *testing.T) {
	assert.Equal(t, "R1000", Turn{Direction: Right, Ticks: 1000}.String())
	assert.Equal(t, "L0", Turn{Direction: Left}.String())
	assert.Equal(t, "Direction(7)", Direction(7).String())
}

func TestTurn_JSON(t *testing.T) {
	data, err := json.Marshal(Turn{Direction: Left, Ticks: 250})
	require.NoError(t, err)
	assert.JSONEq(t, `{"direction":"L","ticks":250}`, string(data))
}

func TestErrors_Unwrap(t *testing.T) {
	perr := &ParseError{Line: 3, Text: "X10", Err: ErrMalformedDirection}
	assert.True(t, errors.Is(perr, ErrMalformedDirection))
	assert.Contains(t, perr.Error(), "line 3")

	ierr := &InvariantError{Turn: Turn{Direction: Right, Ticks: 1}, From: 99, To: 100}
	assert.True(t, errors.Is(ierr, ErrDialOutOfRange))
	assert.Contains(t, ierr.Error(), "99 -> 100")
}
