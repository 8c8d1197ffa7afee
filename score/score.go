package score

import (
	"errors"

	"github.com/katalvlaran/breach/puzzle"
	"github.com/katalvlaran/breach/symbol"
)

// Sentinel errors shared by Score and ValidatePath.
var (
	// ErrNilPuzzle indicates a nil puzzle.
	ErrNilPuzzle = errors.New("score: puzzle must be non-nil")

	// ErrEmptyPath indicates a path with no cells.
	ErrEmptyPath = errors.New("score: path must contain at least one cell")

	// ErrOutOfBounds indicates a path coordinate outside the grid.
	ErrOutOfBounds = errors.New("score: path coordinate outside the grid")

	// ErrPathTooLong indicates a path longer than the buffer size.
	ErrPathTooLong = errors.New("score: path length exceeds buffer size")

	// ErrRepeatedCell indicates a path visiting the same cell twice.
	ErrRepeatedCell = errors.New("score: path visits a cell twice")

	// ErrStartRow indicates a path whose first cell is not in row zero.
	ErrStartRow = errors.New("score: path must start in row zero")

	// ErrMoveAxis indicates a step breaking the column/row alternation rule.
	ErrMoveAxis = errors.New("score: path breaks column/row alternation")
)

// Scorecard is the oracle's verdict on one path.
type Scorecard struct {
	// BufferSequence holds the grid symbols read along the path, in order.
	BufferSequence []symbol.Symbol

	// ActiveDaemons marks, per daemon index, whether the daemon's sequence
	// occurs contiguously inside BufferSequence.
	ActiveDaemons []bool

	// TotalPoints is the sum of costs of active daemons. Overlapping daemons
	// are additive; the reward is never exclusive.
	TotalPoints int
}

// Score computes the Scorecard for path over p.
//
// Rejections (shape only, movement legality is ValidatePath's job):
//   - ErrNilPuzzle for a nil puzzle,
//   - ErrEmptyPath for a zero-length path,
//   - ErrOutOfBounds for any coordinate outside the grid.
//
// A daemon longer than the path can never be active; that is data, not an
// error. Scoring is pure: calling it twice on the same inputs yields
// identical results.
//
// Complexity: O(k·D·L) time for a path of length k, D daemons of padded
// length L; O(k + D) memory.
func Score(p *puzzle.Puzzle, path puzzle.Path) (Scorecard, error) {
	if p == nil {
		return Scorecard{}, ErrNilPuzzle
	}
	if len(path) == 0 {
		return Scorecard{}, ErrEmptyPath
	}

	// Read the buffer off the grid.
	buf := make([]symbol.Symbol, len(path))
	for i, c := range path {
		if !p.InBounds(c) {
			return Scorecard{}, ErrOutOfBounds
		}
		buf[i] = p.At(c)
	}

	// Exact contiguous occurrence, anywhere in the buffer.
	active := make([]bool, p.DaemonCount())
	total := 0
	for i := range active {
		if matches(buf, p.Daemon(i)) {
			active[i] = true
			total += p.Cost(i)
		}
	}

	return Scorecard{
		BufferSequence: buf,
		ActiveDaemons:  active,
		TotalPoints:    total,
	}, nil
}

// matches reports whether pattern occurs as a contiguous run inside buf.
func matches(buf, pattern []symbol.Symbol) bool {
	if len(pattern) == 0 || len(pattern) > len(buf) {
		return false
	}
	for off := 0; off+len(pattern) <= len(buf); off++ {
		hit := true
		for s := range pattern {
			if buf[off+s] != pattern[s] {
				hit = false

				break
			}
		}
		if hit {
			return true
		}
	}

	return false
}

// ValidatePath checks the full movement legality of path over p:
//
//  1. Non-empty and within the buffer bound.
//  2. All coordinates inside the grid, no cell visited twice.
//  3. Step 0 lies in row 0.
//  4. Odd steps share the column with the previous cell, even steps (t ≥ 2)
//     share the row.
//
// Complexity: O(k) time, O(k) memory for the visited set.
func ValidatePath(p *puzzle.Puzzle, path puzzle.Path) error {
	if p == nil {
		return ErrNilPuzzle
	}
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if len(path) > p.BufferSize() {
		return ErrPathTooLong
	}

	seen := make(map[puzzle.Coord]struct{}, len(path))
	for t, c := range path {
		if !p.InBounds(c) {
			return ErrOutOfBounds
		}
		if _, dup := seen[c]; dup {
			return ErrRepeatedCell
		}
		seen[c] = struct{}{}

		switch {
		case t == 0:
			if c.Row != 0 {
				return ErrStartRow
			}
		case t%2 == 1: // vertical move: stay in the previous column
			if c.Col != path[t-1].Col {
				return ErrMoveAxis
			}
		default: // horizontal move: stay in the previous row
			if c.Row != path[t-1].Row {
				return ErrMoveAxis
			}
		}
	}

	return nil
}
