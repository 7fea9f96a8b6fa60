package engine

import "github.com/rocketscienceinc/foldtactoe/internal/entity"

// updateOutcome - checks the game status after a move. The first satisfied rule
// wins: a completed line, then dimensional dominance, then a full board.
func (that *Engine) updateOutcome() {
	if that.outcome.IsOver() {
		return
	}

	that.outcome = evaluate(that.board, that.folds)
}

func evaluate(board entity.Board, folds entity.FoldVector) entity.Outcome {
	if winner, ok := board.CompletedLine(); ok {
		return entity.Won(winner)
	}

	if winner, ok := dominantPlayer(board, folds); ok {
		return entity.Won(winner)
	}

	if board.IsFull() {
		return entity.Drawn()
	}

	return entity.InProgress()
}

// dominantPlayer - with enough folds active, the player holding strictly more
// pieces wins. Equal counts decide nothing.
func dominantPlayer(board entity.Board, folds entity.FoldVector) (entity.Player, bool) {
	if folds.ActiveCount() < dominanceThreshold {
		return 0, false
	}

	one, two := board.Count(entity.PlayerOneCell), board.Count(entity.PlayerTwoCell)

	switch {
	case one > two:
		return entity.PlayerOne, true
	case two > one:
		return entity.PlayerTwo, true
	default:
		return 0, false
	}
}
