package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputsHappyPath(t *testing.T) {
	board, inputs, err := Inputs([]string{"AhAd", "KhKd"}, "")
	require.NoError(t, err)
	assert.Empty(t, board)
	require.Len(t, inputs, 2)
	assert.Equal(t, Exact, inputs[0].Kind)
	assert.Equal(t, Exact, inputs[1].Kind)
}

func TestInputsRejectsFewerThanTwoPlayers(t *testing.T) {
	_, _, err := Inputs([]string{"AhAd"}, "")
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, InvalidHand, perr.Kind)
}

func TestInputsRejectsExceedingDeckCapacity(t *testing.T) {
	players := make([]string, 26)
	for i := range players {
		players[i] = ""
	}
	_, _, err := Inputs(players, "2h5h9c")
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, InvalidHand, perr.Kind)
}

func TestInputsRejectsDuplicateAcrossPlayersAndBoard(t *testing.T) {
	_, _, err := Inputs([]string{"AhAd", "AhKd"}, "")
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, InvalidHand, perr.Kind)
}

func TestInputsRejectsDuplicateWithBoard(t *testing.T) {
	_, _, err := Inputs([]string{"AhKd", "QsQc"}, "2h5h9cAh")
	require.Error(t, err)
}

func TestInputsMixedKinds(t *testing.T) {
	board, inputs, err := Inputs([]string{"AhAd", "", "TT+"}, "2h5h9c")
	require.NoError(t, err)
	assert.Len(t, board, 3)
	require.Len(t, inputs, 3)
	assert.Equal(t, Exact, inputs[0].Kind)
	assert.Equal(t, Unknown, inputs[1].Kind)
	assert.Equal(t, RangeKind, inputs[2].Kind)
}
