package entity

// Status is the lifecycle stage of a game.
type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDrawn   Status = "drawn"
)

// Outcome is InProgress, Won(player) or Drawn. Winner is only set for StatusWon.
type Outcome struct {
	Status Status `json:"status"`
	Winner Player `json:"winner,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Status: StatusOngoing}
}

func Won(player Player) Outcome {
	return Outcome{Status: StatusWon, Winner: player}
}

func Drawn() Outcome {
	return Outcome{Status: StatusDrawn}
}

func (that Outcome) IsOver() bool {
	return that.Status == StatusWon || that.Status == StatusDrawn
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDrawn
}

// WinnerPlayer reports the winner for a won game.
func (that Outcome) WinnerPlayer() (Player, bool) {
	if that.Status != StatusWon {
		return 0, false
	}
	return that.Winner, true
}

func (that Outcome) String() string {
	if player, ok := that.WinnerPlayer(); ok {
		return string(that.Status) + ":" + player.String()
	}
	return string(that.Status)
}
