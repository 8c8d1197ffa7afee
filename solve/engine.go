// Branch-and-bound / exhaustive search engine.
//
// The engine runs a depth-first search over buffer steps with deterministic
// branching, an admissible reward upper bound, and a soft time budget.
//
// Rationale (succinct):
//  1. The grid is prefetched into a dense row-major buffer and daemons into
//     true-length pattern slices, removing accessor overhead in hot loops.
//  2. State per node: the visited-cell set, the path/buffer prefix, the
//     per-daemon activation flags and the running reward. Activation is
//     detected incrementally: after placing symbol k, a still-inactive
//     daemon of length L activates iff the buffer suffix of length L equals
//     its pattern. Backtracking undoes exactly the newly flipped flags.
//  3. Every node is a legal stopping point (a path prefix is a valid path),
//     so the incumbent is updated at every placement, not only at leaves.
//  4. Upper bound per node: current reward + cost of every inactive daemon
//     that can still fit in the remaining buffer (either starting fresh, or
//     overlapping when the current buffer suffix matches one of its
//     prefixes) + the optimistic ε term. Prune when the bound cannot beat
//     the incumbent by more than the gap tolerance.
//  5. Branching order: ascending cell index within the forced row/column.
//     Fully deterministic; identical options give identical results.
//  6. Soft time limit: rare deadline checks (every 1024 node events) keep
//     overhead negligible; on expiry the whole stack unwinds and the best
//     incumbent survives.
//
// Complexity: worst case exponential in the buffer size (exact search);
// per node O(D·L) activation upkeep and O(D·L²) bound computation.
package solve

import (
	"math"
	"time"

	"github.com/katalvlaran/breach/puzzle"
	"github.com/katalvlaran/breach/symbol"
)

// fpEps absorbs float rounding in objective comparisons. Objective values
// move in steps of at least ε (≥ 0.1/capacity per slot), far above 1e-9.
const fpEps = 1e-9

// deadlineMask controls deadline-check sparsity (every 1024 node events).
const deadlineMask = 1023

// engine holds all search data and policies. A dedicated struct (instead of
// closures) keeps dependencies explicit and hot-path state predictable.
type engine struct {
	// Geometry / instance data (dense prefetch).
	rows, cols int
	cap        int
	grid       []symbol.Symbol   // grid[r*cols+c]
	daemons    [][]symbol.Symbol // true-length patterns, Stop padding dropped
	costs      []int

	// Policy.
	eps      float64 // tie-break reward per unused buffer slot
	gap      float64 // absolute optimality-gap tolerance
	useBound bool    // false for the exhaustive engine

	// Time budget.
	useDeadline bool
	deadline    time.Time
	steps       int64 // sparse deadline-check counter
	timedOut    bool

	// Current search state.
	visited []bool
	path    []puzzle.Coord
	buffer  []symbol.Symbol
	active  []bool
	reward  int

	// Incumbent.
	bestPath   puzzle.Path
	bestObj    float64
	bestReward int

	// Accounting.
	nodes int64
}

// newEngine prefetches the puzzle into dense buffers and derives ε.
func newEngine(p *puzzle.Puzzle, opts Options, useBound bool) *engine {
	rows, cols, capacity := p.Rows(), p.Cols(), p.BufferSize()

	e := &engine{
		rows:     rows,
		cols:     cols,
		cap:      capacity,
		grid:     make([]symbol.Symbol, rows*cols),
		daemons:  make([][]symbol.Symbol, p.DaemonCount()),
		costs:    make([]int, p.DaemonCount()),
		gap:      opts.Gap,
		useBound: useBound,
		visited:  make([]bool, rows*cols),
		path:     make([]puzzle.Coord, capacity),
		buffer:   make([]symbol.Symbol, capacity),
		active:   make([]bool, p.DaemonCount()),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			e.grid[r*cols+c] = p.At(puzzle.Coord{Row: r, Col: c})
		}
	}
	for i := 0; i < p.DaemonCount(); i++ {
		e.daemons[i] = p.Daemon(i)
		e.costs[i] = p.Cost(i)
	}
	e.eps = tieBreak(p)

	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	return e
}

// tieBreak computes ε = 0.1 × min(cost/length) over daemons that can ever
// activate (length ≤ buffer size). Returns 0 when no daemon qualifies, so a
// degenerate instance never divides by zero nor rewards idling.
func tieBreak(p *puzzle.Puzzle) float64 {
	eps := 0.0
	for i := 0; i < p.DaemonCount(); i++ {
		if p.DaemonLen(i) > p.BufferSize() {
			continue
		}
		rate := float64(p.Cost(i)) / float64(p.DaemonLen(i))
		if eps == 0 || rate < eps {
			eps = rate
		}
	}

	return 0.1 * eps
}

// deadlineCheck performs a rare deadline test. Once the budget is exceeded
// the flag stays set and the search unwinds.
func (e *engine) deadlineCheck() bool {
	if e.timedOut {
		return true
	}
	e.steps++
	if !e.useDeadline || (e.steps&deadlineMask) != 0 {
		return false
	}
	if time.Now().After(e.deadline) {
		e.timedOut = true
	}

	return e.timedOut
}

// objective is the node value: reward plus ε per unused buffer slot,
// stabilized to 1e-9 to keep comparisons platform-independent.
func (e *engine) objective(used int) float64 {
	return round1e9(float64(e.reward) + e.eps*float64(e.cap-used))
}

// round1e9 rounds to 1e-9 absolute precision; avoids FP drift without
// affecting optimality (objective increments are ≥ ε ≥ 0.1/cap).
func round1e9(x float64) float64 {
	const scale = 1e9

	return math.Round(x*scale) / scale
}

// suffixIs reports whether the last len(pat) buffer symbols equal pat,
// given k symbols placed.
func (e *engine) suffixIs(k int, pat []symbol.Symbol) bool {
	off := k - len(pat)
	for s := range pat {
		if e.buffer[off+s] != pat[s] {
			return false
		}
	}

	return true
}

// activate flips newly satisfied daemons after the k-th symbol was placed
// and returns their indices so the caller can undo on backtrack.
func (e *engine) activate(k int) []int {
	var newly []int
	for i, pat := range e.daemons {
		if e.active[i] || len(pat) > k {
			continue
		}
		if e.suffixIs(k, pat) {
			e.active[i] = true
			e.reward += e.costs[i]
			newly = append(newly, i)
		}
	}

	return newly
}

// reachable reports whether inactive daemon i can still complete given k
// symbols placed: either a fresh occurrence fits into the remaining slots,
// or the current buffer suffix matches one of its prefixes with enough
// room for the remainder.
func (e *engine) reachable(k, i int) bool {
	pLen := len(e.daemons[i])
	if k+pLen <= e.cap {
		return true
	}
	hi := pLen - 1
	if k < hi {
		hi = k
	}
	lo := k + pLen - e.cap
	if lo < 1 {
		lo = 1
	}
	for s := hi; s >= lo; s-- {
		if e.suffixIs(k, e.daemons[i][:s]) {
			return true
		}
	}

	return false
}

// upperBound is an admissible bound on the best objective achievable in the
// subtree below the current node (k symbols placed): the ε term can only
// shrink with further placements, and only reachable daemons can still pay.
func (e *engine) upperBound(k int) float64 {
	ub := float64(e.reward) + e.eps*float64(e.cap-k)
	for i := range e.daemons {
		if e.active[i] || len(e.daemons[i]) > e.cap {
			continue
		}
		if e.reachable(k, i) {
			ub += float64(e.costs[i])
		}
	}

	return round1e9(ub)
}

// dfs branches over the legal cells for step k. Step 0 is confined to row 0;
// odd steps share the previous cell's column, even steps its row.
func (e *engine) dfs(k int, last puzzle.Coord) {
	if e.deadlineCheck() {
		return
	}
	if k == e.cap {
		return
	}
	if e.useBound {
		// The gap tolerance widens pruning only once a rewarding incumbent
		// exists; otherwise a large gap could prune the root and return
		// nothing despite a rewarding path being out there.
		limit := e.bestObj
		if e.bestReward > 0 {
			limit += e.gap
		}
		if e.upperBound(k) <= limit+fpEps {
			return
		}
	}

	switch {
	case k == 0:
		for col := 0; col < e.cols; col++ {
			e.place(k, puzzle.Coord{Row: 0, Col: col})
		}
	case k%2 == 1: // vertical move
		for row := 0; row < e.rows; row++ {
			e.place(k, puzzle.Coord{Row: row, Col: last.Col})
		}
	default: // horizontal move
		for col := 0; col < e.cols; col++ {
			e.place(k, puzzle.Coord{Row: last.Row, Col: col})
		}
	}
}

// place commits cell c as step k, updates activations and the incumbent,
// recurses, and restores all state on return.
func (e *engine) place(k int, c puzzle.Coord) {
	if e.timedOut {
		return
	}
	idx := c.Row*e.cols + c.Col
	if e.visited[idx] {
		return
	}
	e.visited[idx] = true
	e.path[k] = c
	e.buffer[k] = e.grid[idx]
	newly := e.activate(k + 1)
	e.nodes++

	// Every prefix is a legal stopping point; record rewarding improvements.
	if e.reward > 0 {
		if obj := e.objective(k + 1); obj > e.bestObj+fpEps {
			e.bestObj = obj
			e.bestReward = e.reward
			e.bestPath = append(e.bestPath[:0], e.path[:k+1]...)
		}
	}

	e.dfs(k+1, c)

	for _, i := range newly {
		e.active[i] = false
		e.reward -= e.costs[i]
	}
	e.visited[idx] = false
}

// run executes the search. Panics inside the machinery are surfaced by the
// dispatcher as ErrEngine; run itself stays allocation-lean.
func (e *engine) run() {
	e.dfs(0, puzzle.Coord{})
}
