package engine

import "errors"

// Internal rejection reasons. They never leave the package: ApplyMove reports
// every rejection as entity.ActionInvalidMove.
var (
	errGameOver     = errors.New("game is already over")
	errCellOccupied = errors.New("cell is already occupied")
)
