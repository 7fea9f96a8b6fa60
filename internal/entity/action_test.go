package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionSet(t *testing.T) {
	set := NewActionSet(ActionPiecePlaced, ActionFoldToggled)

	assert.True(t, set.Has(ActionPiecePlaced))
	assert.True(t, set.Has(ActionFoldToggled))
	assert.False(t, set.IsInvalid())
	assert.Equal(t, []Action{ActionPiecePlaced, ActionFoldToggled}, set.Actions())
	assert.Equal(t, "piece_placed,fold_toggled", set.String())

	assert.True(t, InvalidMoveSet.IsInvalid())
	assert.False(t, InvalidMoveSet.Has(ActionPiecePlaced))
	assert.True(t, ActionSet(0).IsEmpty())
}

func TestActionSet_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewActionSet(ActionFoldToggled))

	require.NoError(t, err)
	assert.JSONEq(t, `["fold_toggled"]`, string(data))
}
