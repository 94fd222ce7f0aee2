package equity

import (
	"github.com/lox/pokerequity/internal/deck"
	"github.com/lox/pokerequity/internal/parse"
)

// Hand is one player's concrete two hole cards within an assignment.
type Hand [2]deck.Card

// Count returns the number of valid per-player hand tuples consistent with
// board and the other players' assigned hands. When maxExclusive is
// positive, counting stops as soon as that many tuples have been found and
// returns a value >= maxExclusive -- callers only need to know whether the
// true count crosses a threshold, not its exact size.
func Count(inputs []parse.PlayerInput, board []deck.Card, maxExclusive int) int {
	n := 0
	walk(inputs, board, maxExclusive, func(tuple []Hand) bool {
		n++
		return true
	})
	return n
}

// Enumerate invokes callback once per valid tuple, in an order determined
// by the fixed deck order and each Range's own iteration order.
func Enumerate(inputs []parse.PlayerInput, board []deck.Card, callback func(tuple []Hand)) {
	walk(inputs, board, 0, func(tuple []Hand) bool {
		callback(tuple)
		return true
	})
}

// walk is the shared depth-first backtracking core. used is threaded
// through the recursion with a strict push/pop discipline so no copy of the
// card set is allocated per frame. cb returning false, or the tuple count
// reaching limit (when limit > 0), stops the walk early.
func walk(inputs []parse.PlayerInput, board []deck.Card, limit int, cb func(tuple []Hand) bool) {
	used := deck.NewSet(board...)
	tuple := make([]Hand, len(inputs))
	all := deck.All()
	count := 0
	stopped := false

	var recurse func(i int)
	recurse = func(i int) {
		if stopped {
			return
		}
		if i == len(inputs) {
			count++
			if !cb(tuple) {
				stopped = true
				return
			}
			if limit > 0 && count >= limit {
				stopped = true
			}
			return
		}

		switch in := inputs[i]; in.Kind {
		case parse.Exact:
			if used.Contains(in.C1) || used.Contains(in.C2) {
				return
			}
			used = used.Add(in.C1).Add(in.C2)
			tuple[i] = Hand{in.C1, in.C2}
			recurse(i + 1)
			used = used.Remove(in.C1).Remove(in.C2)

		case parse.Partial:
			if used.Contains(in.C1) {
				return
			}
			used = used.Add(in.C1)
			for _, c2 := range all {
				if stopped {
					break
				}
				if c2 == in.C1 || used.Contains(c2) {
					continue
				}
				used = used.Add(c2)
				tuple[i] = Hand{in.C1, c2}
				recurse(i + 1)
				used = used.Remove(c2)
			}
			used = used.Remove(in.C1)

		case parse.RangeKind:
			for _, combo := range in.Range {
				if stopped {
					break
				}
				if used.Contains(combo.A) || used.Contains(combo.B) {
					continue
				}
				used = used.Add(combo.A).Add(combo.B)
				tuple[i] = Hand{combo.A, combo.B}
				recurse(i + 1)
				used = used.Remove(combo.A).Remove(combo.B)
			}

		default: // parse.Unknown
			for ai := 0; ai < len(all); ai++ {
				if stopped {
					break
				}
				a := all[ai]
				if used.Contains(a) {
					continue
				}
				used = used.Add(a)
				for bi := ai + 1; bi < len(all); bi++ {
					if stopped {
						break
					}
					b := all[bi]
					if used.Contains(b) {
						continue
					}
					used = used.Add(b)
					tuple[i] = Hand{a, b}
					recurse(i + 1)
					used = used.Remove(b)
				}
				used = used.Remove(a)
			}
		}
	}

	recurse(0)
}
