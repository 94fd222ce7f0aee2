package equity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerequity/internal/deck"
	"github.com/lox/pokerequity/internal/parse"
)

// TestMonteCarloConvergesToExactOnTieProneBoard exercises the testable
// property that the exact engine's output equals the Monte Carlo engine's
// probability limit as iterations grow, using a board where both hands
// frequently chop: a flop of three high spades with two
// unrelated low, non-spade hole hands means most turn/river completions
// leave both players simply playing the board. Tie-heavy inputs are
// exactly where a tie-crediting mismatch between the two engines would
// show up as a systematic bias rather than sampling noise.
func TestMonteCarloConvergesToExactOnTieProneBoard(t *testing.T) {
	board, err := parse.Board("AsKsQs")
	require.NoError(t, err)

	inputs := []parse.PlayerInput{
		{Kind: parse.Exact, C1: deck.NewCard(deck.Hearts, deck.Two), C2: deck.NewCard(deck.Diamonds, deck.Three)},
		{Kind: parse.Exact, C1: deck.NewCard(deck.Clubs, deck.Four), C2: deck.NewCard(deck.Diamonds, deck.Five)},
	}

	exactEquities, _, _ := runExact(inputs, board)

	rng := rand.New(rand.NewSource(7))
	mcEquities, valid, err := runMonteCarlo(inputs, board, 200000, rng)
	require.NoError(t, err)
	require.Greater(t, valid, uint64(0))

	assert.InDelta(t, exactEquities[0], mcEquities[0], 1.5)
	assert.InDelta(t, exactEquities[1], mcEquities[1], 1.5)
}
