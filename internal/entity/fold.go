package entity

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/foldtactoe/internal/apperror"
)

const FoldCount = 4

// Fold names one of the four dimensions a move can toggle.
type Fold uint8

const (
	FoldSpace Fold = iota
	FoldTime
	FoldRule
	FoldChaos
)

var foldNames = [FoldCount]string{"space", "time", "rule", "chaos"}

func (that Fold) IsValid() bool {
	return that < FoldCount
}

func (that Fold) String() string {
	if !that.IsValid() {
		return fmt.Sprintf("fold(%d)", uint8(that))
	}
	return foldNames[that]
}

// ParseFold accepts a fold name or its index.
func ParseFold(value string) (Fold, error) {
	for i, name := range foldNames {
		if name == value {
			return Fold(i), nil
		}
	}

	index, err := strconv.Atoi(value)
	if err == nil && index >= 0 && index < FoldCount {
		return Fold(index), nil
	}

	return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidFold, value)
}

func (that Fold) MarshalText() ([]byte, error) {
	if !that.IsValid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidFold, uint8(that))
	}
	return []byte(foldNames[that]), nil
}

func (that *Fold) UnmarshalText(text []byte) error {
	fold, err := ParseFold(string(text))
	if err != nil {
		return err
	}

	*that = fold

	return nil
}

// FoldVector holds which folds are currently active, indexed by Fold.
type FoldVector [FoldCount]bool

func (that *FoldVector) Toggle(fold Fold) {
	that[fold] = !that[fold]
}

func (that FoldVector) IsActive(fold Fold) bool {
	return that[fold]
}

func (that FoldVector) ActiveCount() int {
	count := 0
	for _, active := range that {
		if active {
			count++
		}
	}

	return count
}
