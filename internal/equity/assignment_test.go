package equity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/pokerequity/internal/deck"
	"github.com/lox/pokerequity/internal/parse"
)

func TestCountExactExactIsOne(t *testing.T) {
	inputs := []parse.PlayerInput{
		{Kind: parse.Exact, C1: deck.NewCard(deck.Hearts, deck.Ace), C2: deck.NewCard(deck.Diamonds, deck.Ace)},
		{Kind: parse.Exact, C1: deck.NewCard(deck.Hearts, deck.King), C2: deck.NewCard(deck.Diamonds, deck.King)},
	}
	assert.Equal(t, 1, Count(inputs, nil, 0))
}

func TestCountUnknownOpponentCountsRemainingCombos(t *testing.T) {
	inputs := []parse.PlayerInput{
		{Kind: parse.Exact, C1: deck.NewCard(deck.Hearts, deck.Ace), C2: deck.NewCard(deck.Diamonds, deck.Ace)},
		{Kind: parse.Unknown},
	}
	// 50 remaining cards, choose 2 unordered: C(50,2) = 1225
	assert.Equal(t, 1225, Count(inputs, nil, 0))
}

func TestCountRespectsMaxExclusive(t *testing.T) {
	inputs := []parse.PlayerInput{
		{Kind: parse.Exact, C1: deck.NewCard(deck.Hearts, deck.Ace), C2: deck.NewCard(deck.Diamonds, deck.Ace)},
		{Kind: parse.Unknown},
	}
	n := Count(inputs, nil, 10)
	assert.GreaterOrEqual(t, n, 10)
}

func TestEnumerateProducesOnlyDisjointTuples(t *testing.T) {
	inputs := []parse.PlayerInput{
		{Kind: parse.Partial, C1: deck.NewCard(deck.Hearts, deck.Ace)},
		{Kind: parse.Partial, C1: deck.NewCard(deck.Diamonds, deck.Ace)},
	}
	n := 0
	Enumerate(inputs, nil, func(tuple []Hand) {
		n++
		seen := deck.NewSet()
		for _, h := range tuple {
			for _, c := range h {
				assert.False(t, seen.Contains(c), "card reused across players within one tuple")
				seen = seen.Add(c)
			}
		}
	})
	assert.Greater(t, n, 0)
}

func TestEnumerateRangeSkipsBoardCollisions(t *testing.T) {
	board := []deck.Card{deck.NewCard(deck.Spades, deck.Ace)}
	r := parse.Range{
		{A: deck.NewCard(deck.Spades, deck.Ace), B: deck.NewCard(deck.Hearts, deck.Ace)}, // collides with board
		{A: deck.NewCard(deck.Diamonds, deck.Ace), B: deck.NewCard(deck.Clubs, deck.Ace)},
	}
	inputs := []parse.PlayerInput{
		{Kind: parse.RangeKind, Range: r},
		{Kind: parse.Unknown},
	}
	Enumerate(inputs, board, func(tuple []Hand) {
		assert.Equal(t, deck.NewCard(deck.Diamonds, deck.Ace), tuple[0][0])
		assert.Equal(t, deck.NewCard(deck.Clubs, deck.Ace), tuple[0][1])
	})
}
