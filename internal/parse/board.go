package parse

import (
	"strings"

	"github.com/lox/pokerequity/internal/deck"
)

// Board parses a free-form board string: whitespace and commas are
// stripped, then the remainder is split into two-character card tokens.
// Accepted lengths are 0, 3, 4, or 5 cards; anything else is InvalidHand.
// Duplicate cards within the board are also InvalidHand.
func Board(s string) ([]deck.Card, error) {
	stripped := strings.Map(func(r rune) rune {
		if r == ' ' || r == ',' || r == '\t' || r == '\n' {
			return -1
		}
		return r
	}, s)

	if len(stripped) == 0 {
		return nil, nil
	}

	if len(stripped)%2 != 0 {
		return nil, errHand("board %q has an odd number of characters", s)
	}

	n := len(stripped) / 2
	switch n {
	case 3, 4, 5:
	default:
		return nil, errHand("board %q has %d cards, want 0, 3, 4, or 5", s, n)
	}

	cards := make([]deck.Card, 0, n)
	seen := make(map[deck.Card]bool, n)
	for i := 0; i < len(stripped); i += 2 {
		c, err := CardToken(stripped[i : i+2])
		if err != nil {
			return nil, err
		}
		if seen[c] {
			return nil, errHand("duplicate card %v on board %q", c, s)
		}
		seen[c] = true
		cards = append(cards, c)
	}

	return cards, nil
}
