package parse

import (
	"strings"

	"github.com/lox/pokerequity/internal/deck"
)

// InputKind discriminates the four shapes a player's hole cards can take
// once parsed.
type InputKind int

const (
	// Unknown means both hole cards are unspecified.
	Unknown InputKind = iota
	// Partial means one hole card is known; the other is not.
	Partial
	// Exact means both hole cards are known.
	Exact
	// RangeKind means the player's hand is drawn from a weighted-free set
	// of candidate combinations.
	RangeKind
)

// PlayerInput is the tagged variant the parser produces for each seat. Only
// the fields relevant to Kind are populated; callers are expected to switch
// on Kind exhaustively.
type PlayerInput struct {
	Kind  InputKind
	C1    deck.Card // Exact, Partial (the known card)
	C2    deck.Card // Exact only
	Range Range      // RangeKind only
}

// Player parses one player descriptor: empty means Unknown, one valid card
// token means Partial, two means Exact, and anything else is interpreted as
// a range expression expanded against the already-parsed board.
func Player(descriptor string, board []deck.Card) (PlayerInput, error) {
	trimmed := strings.ReplaceAll(descriptor, " ", "")

	if trimmed == "" {
		return PlayerInput{Kind: Unknown}, nil
	}

	boardSet := deck.NewSet(board...)

	if len(trimmed) == 2 {
		if c, err := CardToken(trimmed); err == nil {
			if boardSet.Contains(c) {
				return PlayerInput{}, errHand("card %v in descriptor %q is already on the board", c, descriptor)
			}
			return PlayerInput{Kind: Partial, C1: c}, nil
		}
	}

	if len(trimmed) == 4 {
		c1, err1 := CardToken(trimmed[0:2])
		c2, err2 := CardToken(trimmed[2:4])
		if err1 == nil && err2 == nil {
			if c1 == c2 {
				return PlayerInput{}, errHand("descriptor %q repeats card %v", descriptor, c1)
			}
			if boardSet.Contains(c1) || boardSet.Contains(c2) {
				return PlayerInput{}, errHand("descriptor %q collides with the board", descriptor)
			}
			return PlayerInput{Kind: Exact, C1: c1, C2: c2}, nil
		}
	}

	full, err := ParseRange(descriptor)
	if err != nil {
		return PlayerInput{}, err
	}

	filtered := full[:0:0]
	for _, combo := range full {
		if boardSet.Contains(combo.A) || boardSet.Contains(combo.B) {
			continue
		}
		filtered = append(filtered, combo)
	}

	if len(filtered) == 0 {
		return PlayerInput{}, errRange(nil, "range %q has no combinations left after removing board collisions", descriptor)
	}

	return PlayerInput{Kind: RangeKind, Range: filtered}, nil
}
