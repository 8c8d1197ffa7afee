// Package solve - unified dispatcher for the path optimizer.
//
// Solve is the canonical entry point: validate options, short-circuit
// instances where no daemon can ever activate, route to the requested
// engine (or pick one), then hand the winning path to the result assembler
// and cross-check it against the scoring oracle.
//
// Design principles:
//   - Deterministic: no randomness anywhere; identical inputs and options
//     give identical results.
//   - Strict sentinels: only errors from types.go; ErrEngine wraps faults
//     of the machinery, never the absence of a solution.
//   - One source of truth: the engine's claimed reward must match the
//     oracle's re-score of the returned path, or the call fails as an
//     engine fault rather than expose an unverified Solution.
package solve

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/breach/puzzle"
	"github.com/katalvlaran/breach/solution"
)

// autoExhaustiveLimit bounds rows·cols·buffer for the Auto policy to pick
// the exhaustive engine; anything larger gets branch-and-bound pruning.
const autoExhaustiveLimit = 200

// Solve searches p for the highest-value legal path and assembles the
// result.
//
// Returns:
//   - (Solution, stats, nil) for the best rewarding path, optimal within
//     opts.Gap whenever stats.Proven is true;
//   - (NoSolution, stats, nil) when no positive-reward path exists; this
//     includes puzzles whose daemons can never fit the buffer, which skip
//     the search entirely;
//   - (nil, stats, err) for invalid options, a nil puzzle, or an engine
//     fault (errors.Is(err, ErrEngine)).
//
// Exceeding opts.TimeLimit is not an error: the best incumbent found so
// far is returned with stats.TimedOut set.
//
// Concurrency: each call builds its own isolated engine state; concurrent
// calls on the same (immutable) puzzle are safe.
func Solve(p *puzzle.Puzzle, opts Options) (solution.Result, Stats, error) {
	var stats Stats

	// Stage 1 - validation.
	if p == nil {
		return nil, stats, ErrNilPuzzle
	}
	if err := validateOptions(opts); err != nil {
		return nil, stats, err
	}

	// Stage 2 - short-circuit instances that can never pay. Daemons longer
	// than the buffer merely shrink the feasible set elsewhere; here every
	// daemon is unreachable, so searching is pointless.
	if !anyActivatable(p) {
		stats.Proven = true
		verboseLog(opts, "solve skipped", slog.String("reason", ReasonNoActivatable))

		return solution.NoSolution{Reason: ReasonNoActivatable}, stats, nil
	}

	// Stage 3 - engine selection.
	algo := opts.Algo
	if algo == Auto {
		algo = pickAlgo(p)
	}

	// Stage 4 - search. Panics inside the machinery become ErrEngine.
	e := newEngine(p, opts, algo == BranchAndBound)
	start := time.Now()
	err := runGuarded(e)
	stats.Elapsed = time.Since(start)
	stats.Nodes = e.nodes
	stats.TimedOut = e.timedOut
	stats.Proven = !e.timedOut
	if err != nil {
		return nil, stats, err
	}

	verboseLog(opts, "search finished",
		slog.String("algo", algo.String()),
		slog.Int64("nodes", stats.Nodes),
		slog.Duration("elapsed", stats.Elapsed),
		slog.Bool("proven", stats.Proven),
		slog.Int("reward", e.bestReward),
	)

	// Stage 5 - assemble and cross-check against the oracle.
	if len(e.bestPath) == 0 {
		return solution.NoSolution{Reason: ReasonNoRewardingPath}, stats, nil
	}

	res, aerr := solution.FromPath(p, e.bestPath)
	if aerr != nil {
		return nil, stats, fmt.Errorf("%w: oracle rejected optimizer path: %v", ErrEngine, aerr)
	}
	sol, ok := res.(solution.Solution)
	if !ok {
		return nil, stats, fmt.Errorf("%w: optimizer claimed reward %d for an unrewarded path", ErrEngine, e.bestReward)
	}
	if sol.TotalPoints() != e.bestReward {
		return nil, stats, fmt.Errorf("%w: optimizer reward %d disagrees with oracle %d", ErrEngine, e.bestReward, sol.TotalPoints())
	}

	return sol, stats, nil
}

// runGuarded executes the engine, converting any internal panic into an
// ErrEngine-wrapped error so callers can always tell "machinery broke"
// apart from "no solution".
func runGuarded(e *engine) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrEngine, r)
		}
	}()
	e.run()

	return nil
}

// anyActivatable reports whether at least one daemon fits the buffer.
func anyActivatable(p *puzzle.Puzzle) bool {
	for i := 0; i < p.DaemonCount(); i++ {
		if p.DaemonLen(i) <= p.BufferSize() {
			return true
		}
	}

	return false
}

// pickAlgo implements the Auto policy: tiny instances enumerate faster
// than they bound, everything else benefits from pruning.
func pickAlgo(p *puzzle.Puzzle) Algo {
	if p.Rows()*p.Cols()*p.BufferSize() <= autoExhaustiveLimit {
		return Exhaustive
	}

	return BranchAndBound
}

// verboseLog emits a diagnostic record when Verbose is set. Diagnostics
// only; never affects results.
func verboseLog(opts Options, msg string, args ...any) {
	if !opts.Verbose {
		return
	}
	lg := opts.Logger
	if lg == nil {
		lg = slog.Default()
	}
	lg.Info(msg, args...)
}
