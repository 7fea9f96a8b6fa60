package engine

import "github.com/rocketscienceinc/foldtactoe/internal/entity"

// applyFold fires the one-shot effect of fold. It runs on activation and on
// deactivation alike.
func (that *Engine) applyFold(fold entity.Fold, move entity.Move) {
	switch fold {
	case entity.FoldSpace:
		that.foldSpace()
	case entity.FoldTime:
		that.foldTime(move)
	case entity.FoldRule:
		that.foldRule()
	case entity.FoldChaos:
		that.foldChaos()
	}
}

// foldSpace swaps the middle and last columns.
func (that *Engine) foldSpace() {
	that.board.SwapColumns(1, 2)
}

// foldTime takes back the piece placed in the same move, if there was one.
func (that *Engine) foldTime(move entity.Move) {
	if move.HasCell() {
		that.board[*move.Cell] = entity.EmptyCell
	}
}

// foldRule hands every piece to the other player.
func (that *Engine) foldRule() {
	snapshot := that.board
	for i, cell := range snapshot {
		that.board[i] = cell.Inverted()
	}
}

// foldChaos permutes the pieces among the occupied cells. The set of occupied
// cells and each player's piece count are preserved.
func (that *Engine) foldChaos() {
	occupied := that.board.Occupied()
	if len(occupied) < 2 {
		return
	}

	pieces := make([]entity.Cell, len(occupied))
	for i, index := range occupied {
		pieces[i] = that.board[index]
	}

	that.shuffler.Shuffle(len(pieces), func(i, j int) {
		pieces[i], pieces[j] = pieces[j], pieces[i]
	})

	for i, index := range occupied {
		that.board[index] = pieces[i]
	}
}
