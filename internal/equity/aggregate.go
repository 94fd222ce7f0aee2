package equity

import "time"

// aggregate builds the EquityResult returned to callers. Floating-point
// sums are not renormalized here; they deviate from 100 only by the
// rounding error accumulated during accumulation, per the aggregator's
// contract.
func aggregate(equities []float64, mode Mode, samples uint64, assignments int, runouts uint64, budget uint32, elapsed time.Duration, wantMetrics bool) *EquityResult {
	result := &EquityResult{
		Equities: equities,
		Mode:     mode,
		Samples:  samples,
	}

	if wantMetrics {
		totalStates := runouts * uint64(max(assignments, 1))
		if mode == ModeMonteCarlo {
			totalStates = uint64(budget)
		}
		result.Metadata = &Metadata{
			Assignments: assignments,
			Runouts:     runouts,
			TotalStates: totalStates,
			Budget:      budget,
			Elapsed:     elapsed,
		}
	}

	return result
}

// uniformEquities distributes 100% evenly across n players, used when zero
// deals were counted and no other signal distinguishes them.
func uniformEquities(n int) []float64 {
	equities := make([]float64, n)
	share := 100.0 / float64(n)
	for i := range equities {
		equities[i] = share
	}
	return equities
}
