package equity

import (
	"github.com/lox/pokerequity/internal/deck"
	"github.com/lox/pokerequity/internal/parse"
)

const defaultIterations = 10000

// defaultedIterations resolves the iteration budget: 0 means "use the
// default of 10,000".
func defaultedIterations(iterations uint32) uint32 {
	if iterations == 0 {
		return defaultIterations
	}
	return iterations
}

// selectMode estimates the exact state-space cost (assignments * runouts)
// against the iteration budget and decides which engine to dispatch to.
// Overflow in the runout count is treated as "too large, use Monte Carlo".
func selectMode(inputs []parse.PlayerInput, board []deck.Card, budget uint32, logger Logger) (useExact bool, runouts uint64, err error) {
	n := len(inputs)
	missing := 5 - len(board)
	residualSize := deck.Size - len(board) - 2*n

	runouts = combinations(residualSize, missing)
	if runouts == 0 {
		return false, 0, &parse.Error{Kind: parse.InvalidHand, Message: "no board completions are possible for this input"}
	}

	if runouts == maxCombinations {
		if logger != nil {
			logger.Debug("mode selector: runout count overflowed, choosing Monte Carlo")
		}
		return false, runouts, nil
	}

	perRunoutBudget := uint64(budget) / runouts
	maxExclusive := int(perRunoutBudget) + 1

	assignments := Count(inputs, board, maxExclusive)

	useExact = uint64(assignments) <= perRunoutBudget

	if logger != nil {
		logger.Debug("mode selector decision",
			"assignments", assignments,
			"runouts", runouts,
			"budget", budget,
			"exact", useExact,
		)
	}

	return useExact, runouts, nil
}
