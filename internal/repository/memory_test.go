package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/foldtactoe/internal/apperror"
	"github.com/rocketscienceinc/foldtactoe/internal/entity"
)

func TestMemoryMatchRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("GetByID_Success", func(t *testing.T) {
		matchRepo := NewMemoryMatchRepository()

		// Given: a stored match
		match := &entity.Match{ID: "123", State: entity.NewState()}
		require.NoError(t, matchRepo.CreateOrUpdate(ctx, match))

		// When: GetByID is called with the existing ID
		retrievedMatch, err := matchRepo.GetByID(ctx, match.ID)

		// Then: the retrieved match should equal the stored one
		require.NoError(t, err)
		assert.Equal(t, match, retrievedMatch)
	})

	t.Run("Stored copy is isolated", func(t *testing.T) {
		matchRepo := NewMemoryMatchRepository()

		match := &entity.Match{ID: "123", State: entity.NewState()}
		require.NoError(t, matchRepo.CreateOrUpdate(ctx, match))

		// When: the caller mutates its match after storing it
		match.State.Board[0] = entity.PlayerOneCell

		// Then: the store still holds the original
		retrievedMatch, err := matchRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, retrievedMatch.State.Board[0])
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		matchRepo := NewMemoryMatchRepository()

		retrievedMatch, err := matchRepo.GetByID(ctx, "9999999")

		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
		assert.Nil(t, retrievedMatch)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		matchRepo := NewMemoryMatchRepository()
		require.NoError(t, matchRepo.CreateOrUpdate(ctx, &entity.Match{ID: "123"}))

		require.NoError(t, matchRepo.DeleteByID(ctx, "123"))

		_, err := matchRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
		require.ErrorIs(t, matchRepo.DeleteByID(ctx, "123"), apperror.ErrMatchNotFound)
	})
}
