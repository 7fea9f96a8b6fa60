package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/foldtactoe/internal/apperror"
	"github.com/rocketscienceinc/foldtactoe/internal/entity"
)

type memoryMatch struct {
	mu      sync.RWMutex
	matches map[string]entity.Match
}

// NewMemoryMatchRepository keeps live matches in process memory. Matches are copied
// in and out, so callers never share state with the store.
func NewMemoryMatchRepository() MatchRepository {
	return &memoryMatch{
		matches: make(map[string]entity.Match),
	}
}

func (that *memoryMatch) CreateOrUpdate(_ context.Context, match *entity.Match) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.matches[match.ID] = *match

	return nil
}

func (that *memoryMatch) GetByID(_ context.Context, id string) (*entity.Match, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	match, ok := that.matches[id]
	if !ok {
		return nil, apperror.ErrMatchNotFound
	}

	return &match, nil
}

func (that *memoryMatch) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.matches[id]; !ok {
		return apperror.ErrMatchNotFound
	}

	delete(that.matches, id)

	return nil
}
