package equity

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerequity/internal/deck"
	"github.com/lox/pokerequity/internal/handrank"
	"github.com/lox/pokerequity/internal/parse"
)

// rejectionAttempts bounds the worst-case cost of placing a single Range
// player per iteration.
const rejectionAttempts = 100

// mcWorkerResult is one worker's partial contribution to the sampled
// equities, fanned in over a channel and summed by the caller. Mirrors the
// teacher's worker-result/channel-fan-in split for parallel Monte Carlo.
// wins holds whole credited win units (see runMonteCarloWorker), not a
// fractional tie share.
type mcWorkerResult struct {
	wins  []float64
	valid uint64
}

// runMonteCarlo approximates equities by sampling iterations valid deals,
// splitting work across goroutines via errgroup. Each worker gets an
// independently-seeded RNG derived from rng, so a fixed top-level seed still
// produces deterministic totals for a fixed worker count. Ties are credited
// exactly as the exact engine credits them: each tying player gets one win
// unit, and the final equities divide by the sum of credited units across
// all players, not by the sample count.
func runMonteCarlo(inputs []parse.PlayerInput, board []deck.Card, iterations uint32, rng *rand.Rand) (equities []float64, valid uint64, err error) {
	n := len(inputs)

	workers := runtime.GOMAXPROCS(0)
	if workers > 8 {
		workers = 8
	}
	if uint32(workers) > iterations {
		workers = int(iterations)
	}
	if workers < 1 {
		workers = 1
	}

	perWorker := int(iterations) / workers
	remainder := int(iterations) % workers

	g, _ := errgroup.WithContext(context.Background())
	results := make(chan mcWorkerResult, workers)

	for w := 0; w < workers; w++ {
		samples := perWorker
		if w < remainder {
			samples++
		}
		workerRng := rand.New(rand.NewSource(rng.Int63()))

		g.Go(func() error {
			results <- runMonteCarloWorker(inputs, board, samples, workerRng)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	close(results)

	wins := make([]float64, n)
	for r := range results {
		valid += r.valid
		for i, w := range r.wins {
			wins[i] += w
		}
	}

	if valid == 0 {
		return nil, 0, &parse.Error{Kind: parse.InvalidRange, Message: "no valid Monte Carlo samples produced"}
	}

	var sum float64
	for _, w := range wins {
		sum += w
	}

	equities = make([]float64, n)
	for i, w := range wins {
		equities[i] = w / sum * 100
	}
	return equities, valid, nil
}

func runMonteCarloWorker(inputs []parse.PlayerInput, board []deck.Card, samples int, rng *rand.Rand) mcWorkerResult {
	n := len(inputs)
	result := mcWorkerResult{wins: make([]float64, n)}

	fixedUsed := deck.NewSet(board...)
	for _, in := range inputs {
		switch in.Kind {
		case parse.Exact:
			fixedUsed = fixedUsed.Add(in.C1).Add(in.C2)
		case parse.Partial:
			fixedUsed = fixedUsed.Add(in.C1)
		}
	}

	missing := 5 - len(board)
	hole := make([][2]deck.Card, n)
	available := make([]deck.Card, 0, deck.Size)

	for iter := 0; iter < samples; iter++ {
		used := fixedUsed

		ok := true
		for i, in := range inputs {
			if in.Kind != parse.RangeKind {
				continue
			}
			combo, placed := sampleRange(in.Range, used, rng)
			if !placed {
				ok = false
				break
			}
			used = used.Add(combo.A).Add(combo.B)
			hole[i] = [2]deck.Card{combo.A, combo.B}
		}
		if !ok {
			continue
		}

		available = available[:0]
		for _, c := range deck.All() {
			if !used.Contains(c) {
				available = append(available, c)
			}
		}
		deck.Shuffle(available, rng)

		cursor := 0
		for i, in := range inputs {
			switch in.Kind {
			case parse.Exact:
				hole[i] = [2]deck.Card{in.C1, in.C2}
			case parse.RangeKind:
				// already placed in the first pass
			case parse.Partial:
				if cursor >= len(available) {
					ok = false
				} else {
					hole[i] = [2]deck.Card{in.C1, available[cursor]}
					cursor++
				}
			default: // Unknown
				if cursor+2 > len(available) {
					ok = false
				} else {
					hole[i] = [2]deck.Card{available[cursor], available[cursor+1]}
					cursor += 2
				}
			}
			if !ok {
				break
			}
		}
		if !ok {
			continue
		}

		if cursor+missing > len(available) {
			continue
		}
		runout := available[cursor : cursor+missing]
		cursor += missing

		ranks := make([]handrank.Rank, n)
		for i := range inputs {
			cards := make([]deck.Card, 0, 7)
			cards = append(cards, hole[i][0], hole[i][1])
			cards = append(cards, board...)
			cards = append(cards, runout...)
			ranks[i] = handrank.Evaluate(cards)
		}

		// Credit ties exactly as the exact engine does: each tying player
		// gets one full win unit, not a 1/winners fractional share. The
		// final normalization divides by the sum of credited units across
		// all players (see runMonteCarlo), not by the sample count, so a
		// k-way tie still contributes proportionally less than a clean win.
		best := handrank.Max(ranks...)
		for i, r := range ranks {
			if r == best {
				result.wins[i]++
			}
		}
		result.valid++
	}

	return result
}

// sampleRange draws one uniformly random combination from r, retrying on
// collision with used up to rejectionAttempts times.
func sampleRange(r parse.Range, used deck.Set, rng *rand.Rand) (parse.Combo, bool) {
	for attempt := 0; attempt < rejectionAttempts; attempt++ {
		combo := r[rng.Intn(len(r))]
		if !used.Contains(combo.A) && !used.Contains(combo.B) {
			return combo, true
		}
	}
	return parse.Combo{}, false
}
