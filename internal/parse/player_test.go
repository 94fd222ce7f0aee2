package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerequity/internal/deck"
)

func TestPlayerEmptyIsUnknown(t *testing.T) {
	p, err := Player("", nil)
	require.NoError(t, err)
	assert.Equal(t, Unknown, p.Kind)
}

func TestPlayerOneCardIsPartial(t *testing.T) {
	p, err := Player("Ah", nil)
	require.NoError(t, err)
	assert.Equal(t, Partial, p.Kind)
	assert.Equal(t, deck.NewCard(deck.Hearts, deck.Ace), p.C1)
}

func TestPlayerTwoCardsIsExact(t *testing.T) {
	p, err := Player("AhKd", nil)
	require.NoError(t, err)
	assert.Equal(t, Exact, p.Kind)
	assert.Equal(t, deck.NewCard(deck.Hearts, deck.Ace), p.C1)
	assert.Equal(t, deck.NewCard(deck.Diamonds, deck.King), p.C2)
}

func TestPlayerExactRejectsRepeatedCard(t *testing.T) {
	_, err := Player("AhAh", nil)
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, InvalidHand, perr.Kind)
}

func TestPlayerRejectsCardOnBoard(t *testing.T) {
	board := []deck.Card{deck.NewCard(deck.Hearts, deck.Ace)}
	_, err := Player("Ah", board)
	require.Error(t, err)

	_, err = Player("AhKd", board)
	require.Error(t, err)
}

func TestPlayerRangeExpression(t *testing.T) {
	p, err := Player("TT+", nil)
	require.NoError(t, err)
	require.Equal(t, RangeKind, p.Kind)
	assert.NotEmpty(t, p.Range)
}

func TestPlayerRangeFiltersBoardCollisions(t *testing.T) {
	board := []deck.Card{
		deck.NewCard(deck.Spades, deck.Ace),
		deck.NewCard(deck.Hearts, deck.Ace),
	}
	p, err := Player("AA", board)
	require.NoError(t, err)
	require.Equal(t, RangeKind, p.Kind)
	assert.Len(t, p.Range, 1, "only the diamonds/clubs ace combo survives")
	boardSet := deck.NewSet(board...)
	for _, combo := range p.Range {
		assert.False(t, boardSet.Contains(combo.A))
		assert.False(t, boardSet.Contains(combo.B))
	}
}

func TestPlayerRangeEmptyAfterFilteringFails(t *testing.T) {
	board := []deck.Card{
		deck.NewCard(deck.Spades, deck.Ace),
		deck.NewCard(deck.Hearts, deck.Ace),
		deck.NewCard(deck.Diamonds, deck.Ace),
		deck.NewCard(deck.Clubs, deck.Ace),
	}
	_, err := Player("AA", board)
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, InvalidRange, perr.Kind)
}
