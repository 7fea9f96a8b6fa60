package entity

import (
	"fmt"

	"github.com/rocketscienceinc/foldtactoe/internal/apperror"
)

// Move is one call into the engine. A nil Cell skips placement, a nil Fold skips folding.
type Move struct {
	Cell *int  `json:"cell,omitempty" yaml:"cell"`
	Fold *Fold `json:"fold,omitempty" yaml:"fold"`
}

func Place(cell int) Move {
	return Move{Cell: &cell}
}

func Toggle(fold Fold) Move {
	return Move{Fold: &fold}
}

func PlaceAndToggle(cell int, fold Fold) Move {
	return Move{Cell: &cell, Fold: &fold}
}

func (that Move) HasCell() bool {
	return that.Cell != nil
}

func (that Move) HasFold() bool {
	return that.Fold != nil
}

func (that Move) IsEmpty() bool {
	return that.Cell == nil && that.Fold == nil
}

// Validate checks that the supplied indices are inside the board and fold ranges.
func (that Move) Validate() error {
	if that.Cell != nil && (*that.Cell < 0 || *that.Cell >= CellCount) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, *that.Cell)
	}

	if that.Fold != nil && !that.Fold.IsValid() {
		return fmt.Errorf("%w: fold %d", apperror.ErrInvalidFold, uint8(*that.Fold))
	}

	return nil
}

func (that Move) String() string {
	switch {
	case that.Cell != nil && that.Fold != nil:
		return fmt.Sprintf("place %d + fold %s", *that.Cell, that.Fold)
	case that.Cell != nil:
		return fmt.Sprintf("place %d", *that.Cell)
	case that.Fold != nil:
		return "fold " + that.Fold.String()
	default:
		return "empty"
	}
}
