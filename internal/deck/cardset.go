package deck

// Set is a bitset over the 52-card universe, indexed by Card.Index.
// It is a value type: copying a Set copies the membership snapshot, which
// the equity enumerators rely on to save/restore "used" cards around
// recursion without allocating.
type Set uint64

// NewSet builds a Set containing the given cards.
func NewSet(cards ...Card) Set {
	var s Set
	for _, c := range cards {
		s = s.Add(c)
	}
	return s
}

// Add returns a new Set with card added.
func (s Set) Add(c Card) Set {
	return s | (1 << uint(c.Index()))
}

// Remove returns a new Set with card removed.
func (s Set) Remove(c Card) Set {
	return s &^ (1 << uint(c.Index()))
}

// Contains reports whether card is a member of the set.
func (s Set) Contains(c Card) bool {
	return s&(1<<uint(c.Index())) != 0
}

// Len reports the number of cards in the set.
func (s Set) Len() int {
	n := 0
	for s != 0 {
		s &= s - 1
		n++
	}
	return n
}
