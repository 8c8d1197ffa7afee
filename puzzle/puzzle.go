package puzzle

import "github.com/katalvlaran/breach/symbol"

// Puzzle is one validated breach-protocol instance. It is immutable once
// built: every accessor that exposes a slice returns a copy, and the only
// constructor is Builder.Build.
type Puzzle struct {
	grid       [][]symbol.Symbol // rows × cols, rectangular
	daemons    [][]symbol.Symbol // padded with symbol.Stop to a common length
	lengths    []int             // true (unpadded) length of each daemon
	costs      []int             // reward per daemon, same count as daemons
	bufferSize int
}

// Rows returns the number of grid rows.
func (p *Puzzle) Rows() int { return len(p.grid) }

// Cols returns the number of grid columns.
func (p *Puzzle) Cols() int { return len(p.grid[0]) }

// BufferSize returns the maximum path length.
func (p *Puzzle) BufferSize() int { return p.bufferSize }

// InBounds reports whether c addresses a cell inside the grid.
func (p *Puzzle) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < p.Rows() && c.Col >= 0 && c.Col < p.Cols()
}

// At returns the symbol stored at c. The caller must ensure c is in bounds
// (see InBounds); out-of-range access panics like any slice access.
func (p *Puzzle) At(c Coord) symbol.Symbol { return p.grid[c.Row][c.Col] }

// DaemonCount returns the number of daemons.
func (p *Puzzle) DaemonCount() int { return len(p.daemons) }

// DaemonLen returns the true (unpadded) length of daemon i.
func (p *Puzzle) DaemonLen(i int) int { return p.lengths[i] }

// Daemon returns a copy of the true-length sequence of daemon i,
// without Stop padding.
func (p *Puzzle) Daemon(i int) []symbol.Symbol {
	out := make([]symbol.Symbol, p.lengths[i])
	copy(out, p.daemons[i][:p.lengths[i]])

	return out
}

// Cost returns the reward for activating daemon i.
func (p *Puzzle) Cost(i int) int { return p.costs[i] }

// Clone returns an independent deep copy of the puzzle.
func (p *Puzzle) Clone() *Puzzle {
	out := &Puzzle{
		grid:       cloneMatrix(p.grid),
		daemons:    cloneMatrix(p.daemons),
		lengths:    make([]int, len(p.lengths)),
		costs:      make([]int, len(p.costs)),
		bufferSize: p.bufferSize,
	}
	copy(out.lengths, p.lengths)
	copy(out.costs, p.costs)

	return out
}

// Equal reports whether two puzzles describe the identical instance:
// same grid, same padded daemons, same costs, same buffer size.
func (p *Puzzle) Equal(other *Puzzle) bool {
	if other == nil {
		return false
	}
	if p.bufferSize != other.bufferSize {
		return false
	}
	if !matrixEqual(p.grid, other.grid) || !matrixEqual(p.daemons, other.daemons) {
		return false
	}
	if len(p.costs) != len(other.costs) {
		return false
	}
	for i := range p.costs {
		if p.costs[i] != other.costs[i] {
			return false
		}
	}

	return true
}

func cloneMatrix(m [][]symbol.Symbol) [][]symbol.Symbol {
	out := make([][]symbol.Symbol, len(m))
	for i, row := range m {
		out[i] = make([]symbol.Symbol, len(row))
		copy(out[i], row)
	}

	return out
}

func matrixEqual(a, b [][]symbol.Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}
