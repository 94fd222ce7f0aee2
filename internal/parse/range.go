package parse

import (
	"strings"

	"github.com/lox/pokerequity/internal/deck"
)

// Combo is one unordered two-card hand within a Range. A is always the
// higher-indexed card so two Combos with the same two cards compare equal.
type Combo struct {
	A, B deck.Card
}

func newCombo(c1, c2 deck.Card) Combo {
	if c1.Index() < c2.Index() {
		c1, c2 = c2, c1
	}
	return Combo{A: c1, B: c2}
}

// Range is a non-empty set of two-card combinations, expanded from a range
// expression. Iteration order is stable (insertion order), matching the
// deterministic traversal the assignment enumerator relies on.
type Range []Combo

// ParseRange expands standard Hold'em shorthand into a Range: "AA", "AKs",
// "AKo", "AK" (both), "TT+" (pair and higher), "A5s-A2s" (connected range),
// and comma-separated combinations of the above.
func ParseRange(notation string) (Range, error) {
	b := &rangeBuilder{seen: make(map[Combo]bool)}

	for _, part := range strings.Split(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := b.addPart(part); err != nil {
			return nil, errRange(err, "invalid range part %q", part)
		}
	}

	if len(b.combos) == 0 {
		return nil, errRange(nil, "range %q expanded to zero combinations", notation)
	}

	return b.combos, nil
}

type rangeBuilder struct {
	combos []Combo
	seen   map[Combo]bool
}

func (b *rangeBuilder) add(c1, c2 deck.Card) {
	combo := newCombo(c1, c2)
	if b.seen[combo] {
		return
	}
	b.seen[combo] = true
	b.combos = append(b.combos, combo)
}

func (b *rangeBuilder) addPart(part string) error {
	switch {
	case strings.Contains(part, "+"):
		return b.addPlusRange(part)
	case strings.Contains(part, "-"):
		return b.addDashRange(part)
	default:
		return b.addSingleHand(part)
	}
}

func (b *rangeBuilder) addSingleHand(notation string) error {
	if len(notation) < 2 || len(notation) > 3 {
		return errRange(nil, "invalid notation length: %s", notation)
	}

	rank1, ok1 := parseRank(notation[0])
	rank2, ok2 := parseRank(notation[1])
	if !ok1 || !ok2 {
		return errRange(nil, "invalid rank in: %s", notation)
	}

	if rank1 == rank2 {
		if len(notation) == 3 {
			return errRange(nil, "pocket pairs cannot have suited/offsuit modifier: %s", notation)
		}
		b.addPocketPair(rank1)
		return nil
	}

	if len(notation) == 2 {
		b.addSuitedCombos(rank1, rank2)
		b.addOffsuitCombos(rank1, rank2)
		return nil
	}

	switch notation[2] {
	case 's':
		b.addSuitedCombos(rank1, rank2)
	case 'o':
		b.addOffsuitCombos(rank1, rank2)
	default:
		return errRange(nil, "invalid modifier: %c", notation[2])
	}
	return nil
}

func (b *rangeBuilder) addPlusRange(notation string) error {
	plusIdx := strings.Index(notation, "+")
	base := notation[:plusIdx]
	if len(base) < 2 || len(base) > 3 {
		return errRange(nil, "invalid base notation: %s", base)
	}

	rank1, ok1 := parseRank(base[0])
	rank2, ok2 := parseRank(base[1])
	if !ok1 || !ok2 {
		return errRange(nil, "invalid rank in: %s", base)
	}

	if rank1 == rank2 {
		for rank := rank1; rank <= deck.Ace; rank++ {
			b.addPocketPair(rank)
		}
		return nil
	}

	suited, offsuit := false, false
	switch {
	case len(base) == 2:
		suited, offsuit = true, true
	case base[2] == 's':
		suited = true
	case base[2] == 'o':
		offsuit = true
	default:
		return errRange(nil, "invalid modifier in: %s", base)
	}

	for rank := rank2; rank < rank1; rank++ {
		if suited {
			b.addSuitedCombos(rank1, rank)
		}
		if offsuit {
			b.addOffsuitCombos(rank1, rank)
		}
	}
	return nil
}

func (b *rangeBuilder) addDashRange(notation string) error {
	parts := strings.Split(notation, "-")
	if len(parts) != 2 {
		return errRange(nil, "invalid dash range format: %s", notation)
	}
	start, end := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if len(start) < 2 || len(end) < 2 {
		return errRange(nil, "invalid notation in range: %s", notation)
	}

	startRank1, ok1 := parseRank(start[0])
	startRank2, ok2 := parseRank(start[1])
	endRank1, ok3 := parseRank(end[0])
	endRank2, ok4 := parseRank(end[1])
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return errRange(nil, "invalid ranks in range: %s", notation)
	}

	if startRank1 == startRank2 && endRank1 == endRank2 {
		lower, upper := minRank(startRank1, endRank1), maxRank(startRank1, endRank1)
		for rank := lower; rank <= upper; rank++ {
			b.addPocketPair(rank)
		}
		return nil
	}

	if startRank1 != endRank1 {
		return errRange(nil, "unsupported range format: %s", notation)
	}

	suited := len(start) == 3 && start[2] == 's'
	offsuit := len(start) == 3 && start[2] == 'o'
	if len(start) == 2 {
		suited, offsuit = true, true
	}

	lower, upper := minRank(startRank2, endRank2), maxRank(startRank2, endRank2)
	for rank := lower; rank <= upper; rank++ {
		if suited {
			b.addSuitedCombos(startRank1, rank)
		}
		if offsuit {
			b.addOffsuitCombos(startRank1, rank)
		}
	}
	return nil
}

func (b *rangeBuilder) addPocketPair(rank deck.Rank) {
	for s1 := deck.Spades; s1 <= deck.Clubs; s1++ {
		for s2 := s1 + 1; s2 <= deck.Clubs; s2++ {
			b.add(deck.NewCard(s1, rank), deck.NewCard(s2, rank))
		}
	}
}

func (b *rangeBuilder) addSuitedCombos(rank1, rank2 deck.Rank) {
	for s := deck.Spades; s <= deck.Clubs; s++ {
		b.add(deck.NewCard(s, rank1), deck.NewCard(s, rank2))
	}
}

func (b *rangeBuilder) addOffsuitCombos(rank1, rank2 deck.Rank) {
	for s1 := deck.Spades; s1 <= deck.Clubs; s1++ {
		for s2 := deck.Spades; s2 <= deck.Clubs; s2++ {
			if s1 != s2 {
				b.add(deck.NewCard(s1, rank1), deck.NewCard(s2, rank2))
			}
		}
	}
}

func minRank(a, b deck.Rank) deck.Rank {
	if a < b {
		return a
	}
	return b
}

func maxRank(a, b deck.Rank) deck.Rank {
	if a > b {
		return a
	}
	return b
}
