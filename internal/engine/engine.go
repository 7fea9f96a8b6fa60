// Package engine implements the dimensional-fold tic-tac-toe rules.
//
// An Engine owns the board, the fold vector, the turn and the outcome. ApplyMove is
// transactional: a rejected move leaves every piece of state untouched and reports
// only entity.ActionInvalidMove.
//
// Engine is not safe for concurrent use; callers that share one must serialize access.
package engine

import (
	"github.com/rocketscienceinc/foldtactoe/internal/entity"
)

// dominanceThreshold is the number of active folds that enables the piece-count win.
const dominanceThreshold = 3

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type Engine struct {
	board   entity.Board
	folds   entity.FoldVector
	turn    entity.Player
	outcome entity.Outcome

	shuffler Shuffler
}

// New returns an engine at the starting position.
func New(shuffler Shuffler) *Engine {
	engine := &Engine{shuffler: shuffler}
	engine.Reset()

	return engine
}

// Restore returns an engine positioned at state. A state without a valid turn
// or status is completed with the starting defaults.
func Restore(state entity.State, shuffler Shuffler) *Engine {
	if !state.Turn.IsValid() {
		state.Turn = entity.PlayerOne
	}

	if state.Outcome.Status == "" {
		state.Outcome = entity.InProgress()
	}

	return &Engine{
		board:    state.Board,
		folds:    state.Folds,
		turn:     state.Turn,
		outcome:  state.Outcome,
		shuffler: shuffler,
	}
}

// Reset replaces the whole state with the starting position.
func (that *Engine) Reset() {
	start := entity.NewState()

	that.board = start.Board
	that.folds = start.Folds
	that.turn = start.Turn
	that.outcome = start.Outcome
}

// ApplyMove places a piece, toggles a fold, or both, in that order, then evaluates
// the outcome and passes the turn. Out-of-range indices are rejected like any other
// invalid move.
func (that *Engine) ApplyMove(move entity.Move) entity.ActionSet {
	if err := that.validateMove(move); err != nil {
		return entity.InvalidMoveSet
	}

	var actions entity.ActionSet

	if move.HasCell() {
		that.board[*move.Cell] = that.turn.Cell()
		actions = actions.With(entity.ActionPiecePlaced)
	}

	if move.HasFold() {
		that.folds.Toggle(*move.Fold)
		actions = actions.With(entity.ActionFoldToggled)

		that.applyFold(*move.Fold, move)
	}

	that.updateOutcome()

	if actions.IsEmpty() {
		return entity.InvalidMoveSet
	}

	that.turn = that.turn.Other()

	return actions
}

// validateMove - checks everything that must hold before the first mutation.
func (that *Engine) validateMove(move entity.Move) error {
	if that.outcome.IsOver() {
		return errGameOver
	}

	if err := move.Validate(); err != nil {
		return err
	}

	if move.HasCell() && that.board[*move.Cell] != entity.EmptyCell {
		return errCellOccupied
	}

	return nil
}

func (that *Engine) Board() entity.Board {
	return that.board
}

func (that *Engine) Folds() entity.FoldVector {
	return that.folds
}

func (that *Engine) Turn() entity.Player {
	return that.turn
}

func (that *Engine) IsOver() bool {
	return that.outcome.IsOver()
}

func (that *Engine) Outcome() entity.Outcome {
	return that.outcome
}

// State returns a copy of the full engine state.
func (that *Engine) State() entity.State {
	return entity.State{
		Board:   that.board,
		Folds:   that.folds,
		Turn:    that.turn,
		Outcome: that.outcome,
	}
}
