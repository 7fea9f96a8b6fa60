package entity

import "time"

// State is a complete engine snapshot.
type State struct {
	Board   Board      `json:"board"`
	Folds   FoldVector `json:"folds"`
	Turn    Player     `json:"turn"`
	Outcome Outcome    `json:"outcome"`
}

// NewState is the position every game starts from.
func NewState() State {
	return State{
		Turn:    PlayerOne,
		Outcome: InProgress(),
	}
}

// Match is a live game held by the match store.
type Match struct {
	ID        string    `json:"id"`
	State     State     `json:"state"`
	Moves     int       `json:"moves"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (that *Match) IsFinished() bool {
	return that.State.Outcome.IsOver()
}
