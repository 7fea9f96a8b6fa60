package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/foldtactoe/internal/apperror"
	"github.com/rocketscienceinc/foldtactoe/internal/config"
	"github.com/rocketscienceinc/foldtactoe/internal/engine"
	"github.com/rocketscienceinc/foldtactoe/internal/entity"
	"github.com/rocketscienceinc/foldtactoe/internal/repository"
	"github.com/rocketscienceinc/foldtactoe/internal/repository/storage"
	"github.com/rocketscienceinc/foldtactoe/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	matchRepo, closeStorage, err := newMatchRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	seed := conf.Chaos.Seed
	if seed == 0 {
		if seed, err = engine.NewSeed(); err != nil {
			return fmt.Errorf("could not seed chaos shuffler: %w", err)
		}
	}

	log.Info("Chaos shuffler seeded", "seed", seed)

	matchManager := usecase.NewMatchManager(logger, matchRepo, engine.NewRandShuffler(seed))

	if _, err = Replay(ctx, logger, matchManager, conf.Replay); err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	return nil
}

func newMatchRepository(ctx context.Context, conf *config.Config) (repository.MatchRepository, func() error, error) {
	switch conf.Storage.Driver {
	case config.DriverMemory:
		return repository.NewMemoryMatchRepository(), func() error { return nil }, nil
	case config.DriverRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewMatchRepository(redisStorage.Connection, conf.Storage.TTL), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStorageDriver, conf.Storage.Driver)
	}
}

// Replay plays a scripted list of moves into a new match and returns once the script is
// exhausted, the match is decided, or ctx is canceled. The last snapshot is returned and
// the match is removed from the store.
func Replay(ctx context.Context, logger *slog.Logger, matchManager *usecase.MatchManager, moves []entity.Move) (*entity.Match, error) {
	log := logger.With("component", "replay")

	match, err := matchManager.StartMatch(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not start match: %w", err)
	}

	matchID := match.ID

	defer func() {
		if endErr := matchManager.EndMatch(context.WithoutCancel(ctx), matchID); endErr != nil {
			log.Error("could not end match", "matchID", matchID, "error", endErr)
		}
	}()

	for i, move := range moves {
		if err = ctx.Err(); err != nil {
			log.Info("Replay interrupted", "matchID", matchID, "step", i)
			return match, nil
		}

		played, actions, err := matchManager.PlayMove(ctx, matchID, move)
		if err != nil {
			if errors.Is(err, apperror.ErrInvalidCell) || errors.Is(err, apperror.ErrInvalidFold) {
				log.Warn("Skipping malformed move", "step", i, "error", err)
				continue
			}

			return nil, fmt.Errorf("could not play move %d: %w", i, err)
		}

		match = played

		log.Info("Replay step",
			"step", i,
			"move", move.String(),
			"actions", actions.String(),
			"turn", match.State.Turn.String(),
		)

		if match.IsFinished() {
			break
		}
	}

	log.Info("Replay finished",
		"matchID", matchID,
		"moves", match.Moves,
		"board", match.State.Board.String(),
		"folds", match.State.Folds,
		"outcome", match.State.Outcome.String(),
	)

	return match, nil
}
