package entity

import (
	"encoding/json"
	"strings"
)

// Action is one effect tag reported by a move.
type Action uint8

const (
	ActionPiecePlaced Action = 1 << iota
	ActionFoldToggled
	ActionInvalidMove
)

func (that Action) String() string {
	switch that {
	case ActionPiecePlaced:
		return "piece_placed"
	case ActionFoldToggled:
		return "fold_toggled"
	case ActionInvalidMove:
		return "invalid_move"
	default:
		return "unknown"
	}
}

// ActionSet is an unordered set of actions. InvalidMove never shares a set with the others.
type ActionSet uint8

// InvalidMoveSet is the result of every rejected move.
const InvalidMoveSet = ActionSet(ActionInvalidMove)

func NewActionSet(actions ...Action) ActionSet {
	var set ActionSet
	for _, action := range actions {
		set = set.With(action)
	}

	return set
}

func (that ActionSet) With(action Action) ActionSet {
	return that | ActionSet(action)
}

func (that ActionSet) Has(action Action) bool {
	return that&ActionSet(action) != 0
}

func (that ActionSet) IsEmpty() bool {
	return that == 0
}

func (that ActionSet) IsInvalid() bool {
	return that.Has(ActionInvalidMove)
}

// Actions lists the members in a stable order.
func (that ActionSet) Actions() []Action {
	actions := make([]Action, 0, 3)
	for _, action := range []Action{ActionPiecePlaced, ActionFoldToggled, ActionInvalidMove} {
		if that.Has(action) {
			actions = append(actions, action)
		}
	}

	return actions
}

func (that ActionSet) String() string {
	names := make([]string, 0, 3)
	for _, action := range that.Actions() {
		names = append(names, action.String())
	}

	return strings.Join(names, ",")
}

func (that ActionSet) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, 3)
	for _, action := range that.Actions() {
		names = append(names, action.String())
	}

	return json.Marshal(names)
}
