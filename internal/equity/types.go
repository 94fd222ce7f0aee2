package equity

import (
	"math/rand"
	"time"

	"github.com/coder/quartz"
)

// Mode records which engine produced an EquityResult.
type Mode int

const (
	// ModeExact means every assignment and runout was enumerated.
	ModeExact Mode = iota
	// ModeMonteCarlo means equities were estimated by sampling.
	ModeMonteCarlo
)

func (m Mode) String() string {
	if m == ModeExact {
		return "exact"
	}
	return "monte-carlo"
}

// Metadata carries the mode selector's bookkeeping, attached to an
// EquityResult only when a caller opts in via WithMetadata.
type Metadata struct {
	Assignments int    // number of valid per-player hand tuples considered
	Runouts     uint64 // number of board completions considered per tuple
	TotalStates uint64 // Assignments * Runouts for Exact; budget for MonteCarlo
	Budget      uint32 // the iteration budget passed to solve
	Elapsed     time.Duration
}

// EquityResult is the output of a solve call: one percentage per player
// (summing to 100 within floating-point tolerance), the mode used, and the
// number of runouts (Exact) or valid samples (MonteCarlo) behind it.
type EquityResult struct {
	Equities []float64
	Mode     Mode
	Samples  uint64
	Metadata *Metadata
}

// Logger is the diagnostic sink the solver reports mode-selection decisions
// and sample counts to. It is satisfied by *charmbracelet/log.Logger
// without an adapter. A nil Logger disables logging entirely.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
}

// options configures a single Solve call. Unexported: callers build one via
// SolveOption functions passed as variadic arguments, following the
// teacher's preference for functional options over a growing parameter
// list (see internal/game/hand_options.go).
type options struct {
	rng         *rand.Rand
	logger      Logger
	wantMetrics bool
	clock       quartz.Clock
}

// SolveOption configures optional behavior of Solve.
type SolveOption func(*options)

// WithRNG supplies the random source used by the Monte Carlo engine. The
// default is a time-seeded source, so callers wanting reproducibility must
// supply their own.
func WithRNG(rng *rand.Rand) SolveOption {
	return func(o *options) { o.rng = rng }
}

// WithLogger attaches a diagnostic sink. The default is silent.
func WithLogger(logger Logger) SolveOption {
	return func(o *options) { o.logger = logger }
}

// WithMetadata requests that the returned EquityResult's Metadata field be
// populated; by default it is left nil to avoid the extra bookkeeping.
func WithMetadata() SolveOption {
	return func(o *options) { o.wantMetrics = true }
}

// WithClock supplies the clock used to time a solve for Metadata.Elapsed.
// The default is quartz.NewReal(); tests inject a quartz.Mock for
// deterministic elapsed-time assertions.
func WithClock(clock quartz.Clock) SolveOption {
	return func(o *options) { o.clock = clock }
}

func newOptions(opts []SolveOption) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.clock == nil {
		o.clock = quartz.NewReal()
	}
	return o
}
