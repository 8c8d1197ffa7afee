package puzzle

import (
	"fmt"

	"github.com/katalvlaran/breach/symbol"
)

// Builder accumulates raw puzzle data in the shape the screen reader emits:
// rows of symbol labels, variable-length daemon label sequences, optional
// per-daemon costs and the buffer size. It is mutable and unchecked; Build
// performs every structural check in one pass and freezes the result into
// an immutable Puzzle.
//
// When costs are not supplied, each daemon's cost defaults to its length,
// so longer sequences are worth more. Supplied costs are honored as-is.
type Builder struct {
	grid       [][]string
	daemons    [][]string
	costs      []int
	bufferSize int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Grid replaces the whole grid with rows of labels.
func (b *Builder) Grid(rows [][]string) *Builder {
	b.grid = rows

	return b
}

// GridRow appends one row of labels to the grid.
func (b *Builder) GridRow(labels ...string) *Builder {
	b.grid = append(b.grid, labels)

	return b
}

// Daemon appends one daemon label sequence.
func (b *Builder) Daemon(labels ...string) *Builder {
	b.daemons = append(b.daemons, labels)

	return b
}

// Costs sets explicit per-daemon rewards. Pass nothing to keep the default
// (cost = daemon length).
func (b *Builder) Costs(costs ...int) *Builder {
	b.costs = costs

	return b
}

// BufferSize sets the maximum path length.
func (b *Builder) BufferSize(n int) *Builder {
	b.bufferSize = n

	return b
}

// Build validates the accumulated data and emits an immutable Puzzle.
//
// Checks, in order:
//  1. Grid shape: at least one row and one column, all rows equal length.
//  2. Grid values: every label parses to a game code or blank.
//  3. Daemons: non-empty, game codes only.
//  4. Costs: same count as daemons when supplied, strictly positive;
//     defaulted to each daemon's length otherwise.
//  5. Buffer size strictly positive.
//
// The first violated check wins; all sentinels are errors.Is-comparable.
// Label context is attached with %w wrapping where it helps diagnosis.
//
// Complexity: O(R·C + D·L) time and memory.
func (b *Builder) Build() (*Puzzle, error) {
	// Stage 1: grid shape.
	if len(b.grid) == 0 || len(b.grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(b.grid[0])
	for _, row := range b.grid {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	// Stage 2: grid values.
	grid := make([][]symbol.Symbol, len(b.grid))
	for r, row := range b.grid {
		grid[r] = make([]symbol.Symbol, cols)
		for c, label := range row {
			s, err := symbol.Parse(label)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at row %d col %d", err, label, r, c)
			}
			if s != symbol.Blank && !s.IsCode() {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrGridSymbol, label, r, c)
			}
			grid[r][c] = s
		}
	}

	// Stage 3: daemons (true sequences first; padding happens after maxLen is known).
	var maxLen int
	daemons := make([][]symbol.Symbol, len(b.daemons))
	lengths := make([]int, len(b.daemons))
	for i, seq := range b.daemons {
		if len(seq) == 0 {
			return nil, fmt.Errorf("%w: daemon %d", ErrEmptyDaemon, i)
		}
		daemons[i] = make([]symbol.Symbol, len(seq))
		for j, label := range seq {
			s, err := symbol.Parse(label)
			if err != nil {
				return nil, fmt.Errorf("%w: %q in daemon %d", err, label, i)
			}
			if !s.IsCode() {
				return nil, fmt.Errorf("%w: %q in daemon %d", ErrDaemonSymbol, label, i)
			}
			daemons[i][j] = s
		}
		lengths[i] = len(seq)
		if len(seq) > maxLen {
			maxLen = len(seq)
		}
	}

	// Stage 4: costs (defaulted to daemon length when absent).
	var costs []int
	if b.costs == nil {
		costs = make([]int, len(daemons))
		copy(costs, lengths)
	} else {
		if len(b.costs) != len(daemons) {
			return nil, ErrCostCount
		}
		costs = make([]int, len(b.costs))
		copy(costs, b.costs)
		for i, c := range costs {
			if c <= 0 {
				return nil, fmt.Errorf("%w: daemon %d has cost %d", ErrCostValue, i, c)
			}
		}
	}

	// Stage 5: buffer size.
	if b.bufferSize <= 0 {
		return nil, ErrBufferSize
	}

	// Freeze: right-pad daemons with Stop to the common length.
	for i := range daemons {
		for len(daemons[i]) < maxLen {
			daemons[i] = append(daemons[i], symbol.Stop)
		}
	}

	return &Puzzle{
		grid:       grid,
		daemons:    daemons,
		lengths:    lengths,
		costs:      costs,
		bufferSize: b.bufferSize,
	}, nil
}
