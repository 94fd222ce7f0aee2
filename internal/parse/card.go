package parse

import "github.com/lox/pokerequity/internal/deck"

// CardToken parses a single two-character token: one rank character (case
// insensitive) followed by one lowercase suit character.
func CardToken(token string) (deck.Card, error) {
	if len(token) != 2 {
		return deck.Card{}, errCard("malformed card token %q", token)
	}

	rank, ok := parseRank(token[0])
	if !ok {
		return deck.Card{}, errCard("unknown rank %q in token %q", string(token[0]), token)
	}

	suit, ok := parseSuit(token[1])
	if !ok {
		return deck.Card{}, errCard("unknown suit %q in token %q", string(token[1]), token)
	}

	return deck.NewCard(suit, rank), nil
}

func parseRank(c byte) (deck.Rank, bool) {
	switch c {
	case 'A', 'a':
		return deck.Ace, true
	case 'K', 'k':
		return deck.King, true
	case 'Q', 'q':
		return deck.Queen, true
	case 'J', 'j':
		return deck.Jack, true
	case 'T', 't':
		return deck.Ten, true
	case '9':
		return deck.Nine, true
	case '8':
		return deck.Eight, true
	case '7':
		return deck.Seven, true
	case '6':
		return deck.Six, true
	case '5':
		return deck.Five, true
	case '4':
		return deck.Four, true
	case '3':
		return deck.Three, true
	case '2':
		return deck.Two, true
	default:
		return 0, false
	}
}

// parseSuit only accepts lowercase, matching the spec's descriptor grammar
// (suit case is significant, unlike rank case).
func parseSuit(c byte) (deck.Suit, bool) {
	switch c {
	case 's':
		return deck.Spades, true
	case 'h':
		return deck.Hearts, true
	case 'd':
		return deck.Diamonds, true
	case 'c':
		return deck.Clubs, true
	default:
		return 0, false
	}
}
