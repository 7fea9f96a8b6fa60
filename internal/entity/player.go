package entity

import "fmt"

// Player identifies one of the two seats. The zero value is not a player.
type Player uint8

const (
	PlayerOne Player = iota + 1
	PlayerTwo
)

func (that Player) Other() Player {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Cell is the board value this player's pieces take.
func (that Player) Cell() Cell {
	return Cell(that)
}

func (that Player) IsValid() bool {
	return that == PlayerOne || that == PlayerTwo
}

func (that Player) String() string {
	switch that {
	case PlayerOne:
		return "player-one"
	case PlayerTwo:
		return "player-two"
	default:
		return fmt.Sprintf("player(%d)", uint8(that))
	}
}
