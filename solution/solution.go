package solution

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/breach/puzzle"
	"github.com/katalvlaran/breach/score"
	"github.com/katalvlaran/breach/symbol"
)

// Result is either a Solution or a NoSolution. The interface is sealed:
// no other type can satisfy it.
type Result interface {
	isResult()
}

// Reason strings used by the assembler for NoSolution results.
const (
	ReasonEmptyPath = "received empty path"
	ReasonNoReward  = "path activates no daemons"
)

// Solution is one valid, positively rewarded answer. Immutable: accessors
// return copies, and the only constructor is FromPath.
type Solution struct {
	path           puzzle.Path
	bufferSequence []symbol.Symbol
	activeDaemons  []bool
	totalPoints    int
}

// NoSolution indicates that no valid solution exists or could be found.
type NoSolution struct {
	// Reason explains the absence of a solution in human terms.
	Reason string
}

func (Solution) isResult()   {}
func (NoSolution) isResult() {}

// FromPath reconstructs a full Result from the minimal information a solver
// needs to hand over: the path and the puzzle it belongs to.
//
// Outcomes:
//   - an empty path yields NoSolution (ReasonEmptyPath), not an error;
//   - a path that breaks shape or movement rules yields a validation error
//     (sentinels from package score);
//   - a legal path with zero reward yields NoSolution (ReasonNoReward);
//     a zero-point Solution is never constructed;
//   - otherwise a Solution carrying oracle-computed fields.
//
// Complexity: dominated by score.Score, O(k·D·L).
func FromPath(p *puzzle.Puzzle, path puzzle.Path) (Result, error) {
	if p == nil {
		return nil, score.ErrNilPuzzle
	}
	if len(path) == 0 {
		return NoSolution{Reason: ReasonEmptyPath}, nil
	}
	if err := score.ValidatePath(p, path); err != nil {
		return nil, err
	}

	card, err := score.Score(p, path)
	if err != nil {
		return nil, err
	}
	if card.TotalPoints <= 0 {
		return NoSolution{Reason: ReasonNoReward}, nil
	}

	return Solution{
		path:           path.Clone(),
		bufferSequence: card.BufferSequence, // Score allocates fresh slices
		activeDaemons:  card.ActiveDaemons,
		totalPoints:    card.TotalPoints,
	}, nil
}

// Path returns a copy of the selected cells, in order.
func (s Solution) Path() puzzle.Path { return s.path.Clone() }

// BufferSequence returns a copy of the symbols read along the path.
func (s Solution) BufferSequence() []symbol.Symbol {
	out := make([]symbol.Symbol, len(s.bufferSequence))
	copy(out, s.bufferSequence)

	return out
}

// ActiveDaemons returns a copy of the per-daemon activation flags.
func (s Solution) ActiveDaemons() []bool {
	out := make([]bool, len(s.activeDaemons))
	copy(out, s.activeDaemons)

	return out
}

// TotalPoints returns the summed reward of the active daemons.
// Always strictly positive.
func (s Solution) TotalPoints() int { return s.totalPoints }

// Len returns the number of buffer cells the solution uses.
func (s Solution) Len() int { return len(s.path) }

// Less orders solutions from worse to better: fewer points first, and among
// equal points the longer path first, so the shortest equally rewarding
// solution sorts last (best).
func (s Solution) Less(other Solution) bool {
	if s.totalPoints != other.totalPoints {
		return s.totalPoints < other.totalPoints
	}

	return len(s.path) > len(other.path)
}

// Equal compares by total points only. This is deliberate deduplication
// semantics: two solutions worth the same are interchangeable.
func (s Solution) Equal(other Solution) bool {
	return s.totalPoints == other.totalPoints
}

// IsIdentical compares every field: path, buffer sequence, activation flags
// and total points.
func (s Solution) IsIdentical(other Solution) bool {
	if s.totalPoints != other.totalPoints || !s.path.Equal(other.path) {
		return false
	}
	if len(s.bufferSequence) != len(other.bufferSequence) ||
		len(s.activeDaemons) != len(other.activeDaemons) {
		return false
	}
	for i := range s.bufferSequence {
		if s.bufferSequence[i] != other.bufferSequence[i] {
			return false
		}
	}
	for i := range s.activeDaemons {
		if s.activeDaemons[i] != other.activeDaemons[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy.
func (s Solution) Clone() Solution {
	return Solution{
		path:           s.path.Clone(),
		bufferSequence: s.BufferSequence(),
		activeDaemons:  s.ActiveDaemons(),
		totalPoints:    s.totalPoints,
	}
}

// String renders a compact one-line summary, e.g.
// "7 pts via [ (0,2) (1,2) (1,0) ] buffer 55 E9 1C".
func (s Solution) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d pts via [", s.totalPoints)
	for _, c := range s.path {
		fmt.Fprintf(&b, " (%d,%d)", c.Row, c.Col)
	}
	b.WriteString(" ] buffer")
	for _, sym := range s.bufferSequence {
		b.WriteByte(' ')
		b.WriteString(sym.String())
	}

	return b.String()
}

// String implements fmt.Stringer for NoSolution.
func (n NoSolution) String() string { return "no solution: " + n.Reason }
