package solution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/breach/puzzle"
	"github.com/katalvlaran/breach/score"
	"github.com/katalvlaran/breach/solution"
	"github.com/katalvlaran/breach/symbol"
)

// fixture:
//
//	1C 55
//	55 1C
//
// daemon [1C 55] worth 2, buffer 3.
func fixture(t *testing.T) *puzzle.Puzzle {
	t.Helper()
	p, err := puzzle.NewBuilder().
		GridRow("1C", "55").
		GridRow("55", "1C").
		Daemon("1C", "55").
		BufferSize(3).
		Build()
	require.NoError(t, err)

	return p
}

// rewardingPath activates the daemon: buffer [1C 55].
var rewardingPath = puzzle.Path{{Row: 0, Col: 0}, {Row: 1, Col: 0}}

func mustSolution(t *testing.T, p *puzzle.Puzzle, path puzzle.Path) solution.Solution {
	t.Helper()
	res, err := solution.FromPath(p, path)
	require.NoError(t, err)
	sol, ok := res.(solution.Solution)
	require.True(t, ok, "expected Solution, got %T", res)

	return sol
}

func TestFromPath_Outcomes(t *testing.T) {
	p := fixture(t)

	t.Run("nil puzzle", func(t *testing.T) {
		_, err := solution.FromPath(nil, rewardingPath)
		assert.ErrorIs(t, err, score.ErrNilPuzzle)
	})

	t.Run("empty path is data, not error", func(t *testing.T) {
		res, err := solution.FromPath(p, nil)
		require.NoError(t, err)
		ns, ok := res.(solution.NoSolution)
		require.True(t, ok)
		assert.Equal(t, solution.ReasonEmptyPath, ns.Reason)
	})

	t.Run("illegal movement is an error", func(t *testing.T) {
		_, err := solution.FromPath(p, puzzle.Path{{Row: 1, Col: 0}})
		assert.ErrorIs(t, err, score.ErrStartRow)
	})

	t.Run("zero reward yields NoSolution", func(t *testing.T) {
		// Buffer [55]: no daemon matches.
		res, err := solution.FromPath(p, puzzle.Path{{Row: 0, Col: 1}})
		require.NoError(t, err)
		ns, ok := res.(solution.NoSolution)
		require.True(t, ok)
		assert.Equal(t, solution.ReasonNoReward, ns.Reason)
	})

	t.Run("rewarding path yields Solution", func(t *testing.T) {
		sol := mustSolution(t, p, rewardingPath)
		assert.Equal(t, 2, sol.TotalPoints())
		assert.Equal(t, 2, sol.Len())
		assert.Equal(t, []symbol.Symbol{symbol.Hex1C, symbol.Hex55}, sol.BufferSequence())
		assert.Equal(t, []bool{true}, sol.ActiveDaemons())
		assert.True(t, sol.Path().Equal(rewardingPath))
	})
}

func TestSolution_AccessorsReturnCopies(t *testing.T) {
	p := fixture(t)
	sol := mustSolution(t, p, rewardingPath)

	path := sol.Path()
	path[0].Col = 9
	buf := sol.BufferSequence()
	buf[0] = symbol.HexFF
	act := sol.ActiveDaemons()
	act[0] = false

	assert.True(t, sol.Path().Equal(rewardingPath))
	assert.Equal(t, symbol.Hex1C, sol.BufferSequence()[0])
	assert.True(t, sol.ActiveDaemons()[0])
}

func TestSolution_Ordering(t *testing.T) {
	p := fixture(t)

	short := mustSolution(t, p, rewardingPath)
	// Same reward reached through a longer detour: [1C 55 1C].
	long := mustSolution(t, p, puzzle.Path{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}})

	// Equal points, so the two are interchangeable but not identical, and the
	// longer one orders first (worse).
	assert.True(t, short.Equal(long))
	assert.False(t, short.IsIdentical(long))
	assert.True(t, long.Less(short))
	assert.False(t, short.Less(long))
	assert.False(t, short.Less(short))
}

func TestSolution_CloneIsIdentical(t *testing.T) {
	p := fixture(t)
	sol := mustSolution(t, p, rewardingPath)
	cp := sol.Clone()

	assert.True(t, sol.IsIdentical(cp))
	assert.True(t, sol.Equal(cp))
}

func TestStringRendering(t *testing.T) {
	p := fixture(t)
	sol := mustSolution(t, p, rewardingPath)

	assert.Equal(t, "2 pts via [ (0,0) (1,0) ] buffer 1C 55", sol.String())
	assert.Equal(t, "no solution: it is blocked",
		solution.NoSolution{Reason: "it is blocked"}.String())
}
