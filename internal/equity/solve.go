// Package equity is the computational heart of the solver: input
// normalization is delegated to internal/parse, and this package
// implements the assignment enumerator, the exact and Monte Carlo engines,
// the adaptive mode selector, and the result aggregator behind the single
// Solve entrypoint.
package equity

import (
	"math/rand"
	"time"

	"github.com/lox/pokerequity/internal/parse"
)

// Solve computes each player's equity share given textual hand descriptors
// and a board, choosing between exact enumeration and Monte Carlo sampling
// based on iterations (0 means "use the default of 10,000"). It is
// synchronous, CPU-bound, and re-entrant: two concurrent calls share no
// state and, absent a shared seed via WithRNG, produce independent random
// sequences.
func Solve(players []string, board string, iterations uint32, opts ...SolveOption) (*EquityResult, error) {
	o := newOptions(opts)
	start := o.clock.Now()

	parsedBoard, inputs, err := parse.Inputs(players, board)
	if err != nil {
		return nil, err
	}

	budget := defaultedIterations(iterations)

	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	useExact, runouts, err := selectMode(inputs, parsedBoard, budget, o.logger)
	if err != nil {
		return nil, err
	}

	var (
		equities    []float64
		mode        Mode
		samples     uint64
		assignments int
	)

	if useExact {
		if o.logger != nil {
			o.logger.Info("solving exactly", "runouts", runouts)
		}
		equities, runouts, assignments = runExact(inputs, parsedBoard)
		mode = ModeExact
		samples = runouts * uint64(max(assignments, 1))
		if assignments == 0 {
			equities = uniformEquities(len(inputs))
		}
	} else {
		if o.logger != nil {
			o.logger.Info("solving via monte carlo", "iterations", budget)
		}
		equities, samples, err = runMonteCarlo(inputs, parsedBoard, budget, rng)
		if err != nil {
			return nil, err
		}
		mode = ModeMonteCarlo
	}

	elapsed := o.clock.Now().Sub(start)
	return aggregate(equities, mode, samples, assignments, runouts, budget, elapsed, o.wantMetrics), nil
}
