package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/foldtactoe/internal/apperror"
)

func TestMove_Validate(t *testing.T) {
	t.Run("Valid moves", func(t *testing.T) {
		for _, move := range []Move{Place(0), Place(8), Toggle(FoldChaos), PlaceAndToggle(4, FoldTime), {}} {
			assert.NoError(t, move.Validate(), move.String())
		}
	})

	t.Run("Cell out of range", func(t *testing.T) {
		assert.ErrorIs(t, Place(9).Validate(), apperror.ErrInvalidCell)
		assert.ErrorIs(t, Place(-1).Validate(), apperror.ErrInvalidCell)
	})

	t.Run("Fold out of range", func(t *testing.T) {
		assert.ErrorIs(t, Toggle(Fold(4)).Validate(), apperror.ErrInvalidFold)
	})
}

func TestMove_String(t *testing.T) {
	assert.Equal(t, "place 3", Place(3).String())
	assert.Equal(t, "fold chaos", Toggle(FoldChaos).String())
	assert.Equal(t, "place 4 + fold time", PlaceAndToggle(4, FoldTime).String())
	assert.Equal(t, "empty", Move{}.String())
	assert.True(t, Move{}.IsEmpty())
}

func TestOutcome(t *testing.T) {
	assert.False(t, InProgress().IsOver())
	assert.True(t, Drawn().IsOver())
	assert.True(t, Drawn().IsDraw())

	winner, ok := Won(PlayerTwo).WinnerPlayer()
	assert.True(t, ok)
	assert.Equal(t, PlayerTwo, winner)
	assert.Equal(t, "won:player-two", Won(PlayerTwo).String())

	_, ok = Drawn().WinnerPlayer()
	assert.False(t, ok)
}
