package equity

import (
	"github.com/lox/pokerequity/internal/deck"
	"github.com/lox/pokerequity/internal/handrank"
	"github.com/lox/pokerequity/internal/parse"
)

// runExact enumerates every valid assignment and, for each, every
// completion of the missing board cards, crediting ties with the
// unit-per-winner scheme: each player tying the best hand for a runout
// gets one win unit, and the per-tuple percentages divide by the sum of
// credited units (not by the runout count), so a k-way tie contributes
// 100/k to each tying player. When more than one assignment is valid
// (mixed inputs), the per-tuple percentage vectors are averaged.
func runExact(inputs []parse.PlayerInput, board []deck.Card) (equities []float64, runouts uint64, assignments int) {
	n := len(inputs)
	missing := 5 - len(board)
	totals := make([]float64, n)

	Enumerate(inputs, board, func(tuple []Hand) {
		assignments++

		used := deck.NewSet(board...)
		for _, h := range tuple {
			used = used.Add(h[0]).Add(h[1])
		}

		residual := make([]deck.Card, 0, deck.Size-used.Len())
		for _, c := range deck.All() {
			if !used.Contains(c) {
				residual = append(residual, c)
			}
		}

		wins := make([]float64, n)
		var tupleRunouts uint64

		hole := make([][]deck.Card, n)
		for i, h := range tuple {
			hole[i] = []deck.Card{h[0], h[1]}
		}

		forEachCombination(residual, missing, func(runout []deck.Card) {
			tupleRunouts++
			ranks := make([]handrank.Rank, n)
			for i := range inputs {
				cards := make([]deck.Card, 0, 7)
				cards = append(cards, hole[i]...)
				cards = append(cards, board...)
				cards = append(cards, runout...)
				ranks[i] = handrank.Evaluate(cards)
			}

			best := handrank.Max(ranks...)
			for i, r := range ranks {
				if r == best {
					wins[i]++
				}
			}
		})

		runouts = tupleRunouts

		var sum float64
		for _, w := range wins {
			sum += w
		}
		if sum == 0 {
			return
		}
		for i, w := range wins {
			totals[i] += w / sum * 100
		}
	})

	equities = make([]float64, n)
	if assignments == 0 {
		return equities, runouts, assignments
	}
	for i := range totals {
		equities[i] = totals[i] / float64(assignments)
	}
	return equities, runouts, assignments
}
