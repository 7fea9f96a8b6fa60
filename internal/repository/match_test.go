package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/foldtactoe/internal/apperror"
	"github.com/rocketscienceinc/foldtactoe/internal/entity"
	"github.com/rocketscienceinc/foldtactoe/testing/suite"
)

func TestMatchRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	matchRepo := NewMatchRepository(st.Storage, time.Minute)

	// Given: a match in progress
	match := &entity.Match{
		ID:    "123",
		State: entity.NewState(),
	}

	// When: CreateOrUpdate is called
	err := matchRepo.CreateOrUpdate(ctx, match)

	// Then: no error should be returned and the key carries the ttl
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, matchKey(match.ID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestMatchRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, 0)

		// Given: a stored match with pieces, folds and a result
		match := &entity.Match{
			ID: "123",
			State: entity.State{
				Board:   entity.Board{1, 1, 1, 2, 2},
				Folds:   entity.FoldVector{true, false, true, false},
				Turn:    entity.PlayerTwo,
				Outcome: entity.Won(entity.PlayerOne),
			},
			Moves:     5,
			UpdatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		}

		err := matchRepo.CreateOrUpdate(ctx, match)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedMatch, err := matchRepo.GetByID(ctx, match.ID)

		// Then: the retrieved match should match the saved match
		require.NoError(t, err)
		assert.Equal(t, match.State, retrievedMatch.State)
		assert.Equal(t, match.Moves, retrievedMatch.Moves)
		assert.True(t, match.UpdatedAt.Equal(retrievedMatch.UpdatedAt))
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, 0)

		// When: GetByID is called with non-existent ID
		retrievedMatch, err := matchRepo.GetByID(ctx, "9999999")

		// Then: an ErrMatchNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
		assert.Nil(t, retrievedMatch)
	})
}

func TestMatchRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, 0)

		// Given: a stored match
		match := &entity.Match{ID: "123", State: entity.NewState()}

		err := matchRepo.CreateOrUpdate(ctx, match)
		require.NoError(t, err)

		// When: DeleteByID is called with existing ID
		err = matchRepo.DeleteByID(ctx, match.ID)

		// Then: no error should be returned and the match is gone
		require.NoError(t, err)

		_, err = matchRepo.GetByID(ctx, match.ID)
		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, 0)

		// When: DeleteByID is called with non-existent ID
		err := matchRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrMatchNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
	})
}
