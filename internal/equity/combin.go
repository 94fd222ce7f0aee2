package equity

import (
	"math"

	"github.com/lox/pokerequity/internal/deck"
)

// maxCombinations is the sentinel returned by combinations when the true
// value would overflow; the mode selector treats it as "too large, use
// Monte Carlo" rather than computing it exactly.
const maxCombinations = math.MaxUint64

// combinations computes C(n, k) by iterative multiplication, clamping to
// maxCombinations on overflow instead of wrapping.
func combinations(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if k > n-k {
		k = n - k
	}

	result := uint64(1)
	for i := 0; i < k; i++ {
		product, overflow := mulOverflows(result, uint64(n-i))
		if overflow {
			return maxCombinations
		}
		result = product / uint64(i+1)
	}
	return result
}

// mulOverflows multiplies a and b, reporting whether the product overflowed
// a uint64.
func mulOverflows(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	product := a * b
	if product/a != b {
		return 0, true
	}
	return product, false
}

// forEachCombination invokes callback with every k-card combination of
// cards, in the deck's fixed order, without allocating per call (the
// selected slice is reused and must not be retained by callback).
func forEachCombination(cards []deck.Card, k int, callback func(selected []deck.Card)) {
	if k > len(cards) {
		return
	}
	if k == 0 {
		callback(nil)
		return
	}

	selected := make([]deck.Card, 0, k)

	var recurse func(start int)
	recurse = func(start int) {
		if len(selected) == k {
			callback(selected)
			return
		}
		remainingNeeded := k - len(selected)
		end := len(cards) - remainingNeeded
		for i := start; i <= end; i++ {
			selected = append(selected, cards[i])
			recurse(i + 1)
			selected = selected[:len(selected)-1]
		}
	}

	recurse(0)
}
