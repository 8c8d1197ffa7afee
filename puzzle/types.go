package puzzle

import "errors"

// Sentinel errors returned by Builder.Build.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("puzzle: grid must have at least one row and one column")

	// ErrNonRectangular indicates grid rows of differing lengths.
	ErrNonRectangular = errors.New("puzzle: all grid rows must have the same length")

	// ErrGridSymbol indicates a grid cell outside the playable alphabet
	// (anything other than a game code or the blank placeholder).
	ErrGridSymbol = errors.New("puzzle: grid cells must be game codes or blank")

	// ErrEmptyDaemon indicates a daemon with no symbols.
	ErrEmptyDaemon = errors.New("puzzle: daemon sequence must not be empty")

	// ErrDaemonSymbol indicates a daemon containing a non-code value.
	ErrDaemonSymbol = errors.New("puzzle: daemon sequences must contain game codes only")

	// ErrCostCount indicates daemons and costs of differing lengths.
	ErrCostCount = errors.New("puzzle: daemons and costs must have the same length")

	// ErrCostValue indicates a non-positive daemon cost.
	ErrCostValue = errors.New("puzzle: daemon costs must be positive")

	// ErrBufferSize indicates a non-positive buffer size.
	ErrBufferSize = errors.New("puzzle: buffer size must be positive")
)

// Coord addresses one grid cell. Row 0 is the top row.
type Coord struct {
	Row, Col int
}

// Path is the ordered sequence of cells selected into the buffer.
type Path []Coord

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Equal reports whether two paths visit the same cells in the same order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}

	return true
}
