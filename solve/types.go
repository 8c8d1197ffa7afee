package solve

import (
	"errors"
	"log/slog"
	"time"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilPuzzle indicates a nil puzzle.
	ErrNilPuzzle = errors.New("solve: puzzle must be non-nil")

	// ErrBadGap indicates a negative optimality-gap tolerance.
	ErrBadGap = errors.New("solve: gap tolerance must be non-negative")

	// ErrBadTimeLimit indicates a negative time limit.
	ErrBadTimeLimit = errors.New("solve: time limit must be non-negative")

	// ErrUnknownAlgo indicates an algorithm code outside the Algo enum.
	ErrUnknownAlgo = errors.New("solve: unknown algorithm code")

	// ErrEngine indicates the search machinery itself failed. It is never
	// produced for a well-posed puzzle that simply has no rewarding path;
	// that outcome is a NoSolution value, not an error.
	ErrEngine = errors.New("solve: engine failure")
)

// Reasons used for NoSolution results produced by the dispatcher.
const (
	// ReasonNoActivatable: every daemon is longer than the buffer (or there
	// are no daemons at all), so no path can ever earn reward.
	ReasonNoActivatable = "no daemon can activate within the buffer"

	// ReasonNoRewardingPath: daemons could fit, but no legal path realizes
	// any of them on this grid.
	ReasonNoRewardingPath = "no path yields positive reward"
)

// Algo selects the search engine.
type Algo int

const (
	// Auto picks Exhaustive for tiny instances and BranchAndBound otherwise.
	Auto Algo = iota

	// Exhaustive enumerates the whole legal-move space without pruning.
	Exhaustive

	// BranchAndBound prunes branches whose reward upper bound cannot beat
	// the incumbent within the gap tolerance.
	BranchAndBound
)

// String returns the canonical name of the algorithm code.
func (a Algo) String() string {
	switch a {
	case Auto:
		return "auto"
	case Exhaustive:
		return "exhaustive"
	case BranchAndBound:
		return "branch-and-bound"
	default:
		return "unknown"
	}
}

// ParseAlgo resolves a user-supplied solver name, accepting the short
// aliases the CLI advertises. Returns ErrUnknownAlgo for anything else.
func ParseAlgo(name string) (Algo, error) {
	switch name {
	case "auto", "":
		return Auto, nil
	case "exhaustive", "ex", "brute":
		return Exhaustive, nil
	case "bnb", "branch-and-bound":
		return BranchAndBound, nil
	default:
		return Auto, ErrUnknownAlgo
	}
}

// Options configures one solve call.
//
// Gap is an absolute optimality-gap tolerance: a branch is abandoned when
// its upper bound cannot improve on the incumbent by more than Gap, so the
// returned objective is within Gap of the optimum. Zero demands exhaustive
// optimality.
//
// TimeLimit bounds the wall clock; zero means effectively unbounded.
// Exceeding the budget returns the best incumbent, flagged in Stats; it is
// not an error.
//
// Verbose enables diagnostic logging through Logger (slog.Default when
// Logger is nil). It has no effect on results.
type Options struct {
	Algo      Algo
	Gap       float64
	TimeLimit time.Duration
	Verbose   bool
	Logger    *slog.Logger
}

// Option is a functional option for NewOptions.
type Option func(*Options)

// DefaultOptions returns the zero configuration: Auto engine, exact
// optimality, no time limit, quiet.
func DefaultOptions() Options { return Options{} }

// NewOptions builds Options from DefaultOptions plus the given overrides.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithAlgo selects the search engine.
func WithAlgo(a Algo) Option {
	return func(o *Options) { o.Algo = a }
}

// WithGap sets the absolute optimality-gap tolerance.
func WithGap(gap float64) Option {
	return func(o *Options) { o.Gap = gap }
}

// WithTimeLimit sets the wall-clock budget (0 = unbounded).
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithVerbose enables diagnostic logging.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// WithLogger injects the logger used when Verbose is set.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Stats reports how the search went. It accompanies every result,
// including NoSolution.
type Stats struct {
	// Nodes is the number of cells placed during the search.
	Nodes int64

	// Elapsed is the wall-clock search time.
	Elapsed time.Duration

	// Proven is true when the search ran to completion, making the result
	// optimal within the configured gap tolerance.
	Proven bool

	// TimedOut is true when the wall-clock budget cut the search short;
	// the result is then the best incumbent found.
	TimedOut bool
}

// validateOptions checks internal consistency of Options without touching
// the puzzle. Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Gap < 0 {
		return ErrBadGap
	}
	if opts.TimeLimit < 0 {
		return ErrBadTimeLimit
	}
	switch opts.Algo {
	case Auto, Exhaustive, BranchAndBound:
	default:
		return ErrUnknownAlgo
	}

	return nil
}
