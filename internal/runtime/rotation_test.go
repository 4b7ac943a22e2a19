package runtime

import (
	"errors"
	"testing"

	"github.com/aretw0/dialsim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func right(n uint32) domain.Turn { return domain.Turn{Direction: domain.Right, Ticks: n} }
func left(n uint32) domain.Turn { return domain.Turn{Direction: domain.Left, Ticks: n} }

func TestApplyTurn(t *testing.T) {
	tests := []struct {
		name           string
		turn           domain.Turn
		dial           int
		wantDial       int
		wantTraversals uint64
	}{
		{name: "Right ten laps", turn: right(1000), dial: 50, wantDial: 50, wantTraversals: 10},
		{name: "Right without wrap", turn: right(10), dial: 50, wantDial: 60},
		{name: "Right lands on zero", turn: right(50), dial: 50, wantDial: 0, wantTraversals: 1},
		{name: "Right from zero", turn: right(5), dial: 0, wantDial: 5},
		{name: "Right zero ticks", turn: right(0), dial: 99, wantDial: 99},
		{name: "Right max ticks", turn: right(4294967295), dial: 99, wantDial: 94, wantTraversals: 42949673},
		{name: "Left crossing twice", turn: left(250), dial: 51, wantDial: 1, wantTraversals: 2},
		{name: "Left without wrap", turn: left(10), dial: 50, wantDial: 40},
		{name: "Left lands exactly on zero", turn: left(50), dial: 50, wantDial: 0, wantTraversals: 1},
		{name: "Left past zero once", turn: left(51), dial: 50, wantDial: 99, wantTraversals: 1},
		{name: "Left lands on multiple of hundred", turn: left(250), dial: 50, wantDial: 0, wantTraversals: 3},
		{name: "Left full lap from zero", turn: left(100), dial: 0, wantDial: 0, wantTraversals: 1},
		{name: "Left small step from zero", turn: left(1), dial: 0, wantDial: 99},
		{name: "Left zero ticks from zero", turn: left(0), dial: 0, wantDial: 0},
		{name: "Left zero ticks", turn: left(0), dial: 42, wantDial: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyTurn(tt.turn, tt.dial)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDial, got.Dial)
			assert.Equal(t, tt.wantTraversals, got.TraversalsThruZero)
		})
	}
}

func TestApplyTurn_AlwaysInRange(t *testing.T) {
	ticks := []uint32{0, 1, 7, 99, 100, 101, 199, 200, 250, 999, 1000, 12345}
	for dial := 0; dial < domain.DialSize; dial++ {
		for _, n := range ticks {
			for _, turn := range []domain.Turn{right(n), left(n)} {
				got, err := ApplyTurn(turn, dial)
				require.NoError(t, err, "turn %s at %d", turn, dial)
				assert.GreaterOrEqual(t, got.Dial, 0)
				assert.Less(t, got.Dial, domain.DialSize)
			}
		}
	}
}

func TestApplyTurn_RoundTrip(t *testing.T) {
	for dial := 0; dial < domain.DialSize; dial++ {
		for _, n := range []uint32{0, 1, 50, 100, 250, 1001} {
			there, err := ApplyTurn(right(n), dial)
			require.NoError(t, err)
			back, err := ApplyTurn(left(n), there.Dial)
			require.NoError(t, err)
			assert.Equal(t, dial, back.Dial, "R%d then L%d from %d", n, n, dial)
		}
	}
}

func TestApplyTurn_FullLapsRight(t *testing.T) {
	for dial := 1; dial < domain.DialSize; dial++ {
		for k := uint32(1); k <= 5; k++ {
			got, err := ApplyTurn(right(100*k), dial)
			require.NoError(t, err)
			assert.Equal(t, dial, got.Dial)
			assert.Equal(t, uint64(k), got.TraversalsThruZero)
		}
	}
}

func TestApplyTurn_InvalidInput(t *testing.T) {
	t.Run("Dial out of range", func(t *testing.T) {
		_, err := ApplyTurn(right(1), domain.DialSize)

		var ierr *domain.InvariantError
		require.True(t, errors.As(err, &ierr))
		assert.ErrorIs(t, err, domain.ErrDialOutOfRange)
	})

	t.Run("Negative dial", func(t *testing.T) {
		_, err := ApplyTurn(left(1), -1)
		assert.ErrorIs(t, err, domain.ErrDialOutOfRange)
	})

	t.Run("Unknown direction", func(t *testing.T) {
		_, err := ApplyTurn(domain.Turn{Direction: domain.Direction(9), Ticks: 1}, 0)
		assert.ErrorIs(t, err, domain.ErrMalformedDirection)
	})
}

func TestInRange(t *testing.T) {
	assert.True(t, inRange(0))
	assert.True(t, inRange(99))
	assert.False(t, inRange(100))
	assert.False(t, inRange(-1))
}
