package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/foldtactoe/internal/apperror"
	"github.com/rocketscienceinc/foldtactoe/internal/entity"
)

const matchKeyPrefix = "match:"

type MatchRepository interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbMatch struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMatchRepository stores live matches in Redis. Every write refreshes the key's ttl,
// so a match disappears once its session has been idle that long. A zero ttl keeps keys
// until they are deleted.
func NewMatchRepository(client *redis.Client, ttl time.Duration) MatchRepository {
	return &dbMatch{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMatch) CreateOrUpdate(ctx context.Context, match *entity.Match) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	err = that.client.Set(ctx, matchKey(match.ID), matchJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set match: %w", err)
	}

	return nil
}

func (that *dbMatch) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	response, err := that.client.Get(ctx, matchKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrMatchNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	var existingMatch entity.Match
	if err = json.Unmarshal([]byte(response), &existingMatch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &existingMatch, nil
}

func (that *dbMatch) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, matchKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete match by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrMatchNotFound
	}

	return nil
}

func matchKey(id string) string {
	return matchKeyPrefix + id
}
