package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/foldtactoe/internal/engine"
	"github.com/rocketscienceinc/foldtactoe/internal/entity"
)

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

// MatchManager drives live matches through the rule engine. The engine is not safe for
// concurrent use, so every operation holds mu for its whole load-apply-store cycle.
type MatchManager struct {
	logger    *slog.Logger
	matchRepo matchRepo
	shuffler  engine.Shuffler
	now       func() time.Time

	mu sync.Mutex
}

func NewMatchManager(logger *slog.Logger, matchRepo matchRepo, shuffler engine.Shuffler) *MatchManager {
	return &MatchManager{
		logger: logger.With("component", "match-manager"),

		matchRepo: matchRepo,
		shuffler:  shuffler,
		now:       time.Now,
	}
}

func (that *MatchManager) StartMatch(ctx context.Context) (*entity.Match, error) {
	log := that.logger.With("method", "StartMatch")

	that.mu.Lock()
	defer that.mu.Unlock()

	match := &entity.Match{
		ID:        uuid.NewString(),
		State:     engine.New(that.shuffler).State(),
		UpdatedAt: that.now(),
	}

	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Info("match started", "matchID", match.ID)

	return match, nil
}

// PlayMove applies one move to the match. A move the rules reject is not an error: the
// returned action set carries InvalidMove and the stored match is left untouched.
func (that *MatchManager) PlayMove(ctx context.Context, id string, move entity.Move) (*entity.Match, entity.ActionSet, error) {
	log := that.logger.With("method", "PlayMove", "matchID", id)

	if err := move.Validate(); err != nil {
		return nil, entity.InvalidMoveSet, fmt.Errorf("failed to validate move: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	match, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, entity.InvalidMoveSet, fmt.Errorf("failed to get match: %w", err)
	}

	rules := engine.Restore(match.State, that.shuffler)
	actions := rules.ApplyMove(move)

	if actions.IsInvalid() {
		log.Debug("move rejected", "move", move.String(), "outcome", match.State.Outcome.String())

		return match, actions, nil
	}

	match.State = rules.State()
	match.Moves++
	match.UpdatedAt = that.now()

	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, entity.InvalidMoveSet, fmt.Errorf("failed to update match: %w", err)
	}

	log.Info("move applied",
		"move", move.String(),
		"actions", actions.String(),
		"board", match.State.Board.String(),
		"outcome", match.State.Outcome.String(),
	)

	return match, actions, nil
}

func (that *MatchManager) GetMatch(ctx context.Context, id string) (*entity.Match, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	match, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

// ResetMatch returns the match to its initial state and keeps its id.
func (that *MatchManager) ResetMatch(ctx context.Context, id string) (*entity.Match, error) {
	log := that.logger.With("method", "ResetMatch", "matchID", id)

	that.mu.Lock()
	defer that.mu.Unlock()

	match, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	rules := engine.Restore(match.State, that.shuffler)
	rules.Reset()

	match.State = rules.State()
	match.Moves = 0
	match.UpdatedAt = that.now()

	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	log.Info("match reset")

	return match, nil
}

func (that *MatchManager) EndMatch(ctx context.Context, id string) error {
	log := that.logger.With("method", "EndMatch", "matchID", id)

	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.matchRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	log.Info("match ended")

	return nil
}
