package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/breach/puzzle"
	"github.com/katalvlaran/breach/symbol"
)

func buildPuzzle(t *testing.T, b *puzzle.Builder) *puzzle.Puzzle {
	t.Helper()
	p, err := b.Build()
	require.NoError(t, err)

	return p
}

// TestRunGuarded_PanicBecomesErrEngine feeds the guard an engine whose state
// is deliberately inconsistent (no grid behind a 1×1 geometry) so the first
// placement panics. The panic must surface as ErrEngine, never escape.
func TestRunGuarded_PanicBecomesErrEngine(t *testing.T) {
	broken := &engine{
		rows: 1,
		cols: 1,
		cap:  1,
	}

	err := runGuarded(broken)
	assert.ErrorIs(t, err, ErrEngine)
}

// TestTieBreak verifies ε = 0.1 × min(cost/length) over daemons that fit the
// buffer, and that oversized daemons are excluded from the minimum.
func TestTieBreak(t *testing.T) {
	p := buildPuzzle(t, puzzle.NewBuilder().
		GridRow("1C", "55").
		Daemon("1C", "55").       // rate 4/2 = 2
		Daemon("BD").             // rate 1/1 = 1 (the minimum)
		Daemon("1C", "55", "BD"). // rate 3/3 = 1/3, but longer than the buffer
		Costs(4, 1, 1).
		BufferSize(2))

	assert.InDelta(t, 0.1, tieBreak(p), 1e-12)
}

// TestTieBreak_NoFittingDaemon: ε must be zero when nothing can ever
// activate, so idle slots earn nothing.
func TestTieBreak_NoFittingDaemon(t *testing.T) {
	p := buildPuzzle(t, puzzle.NewBuilder().
		GridRow("1C", "55").
		Daemon("1C", "55", "BD").
		BufferSize(2))

	assert.Zero(t, tieBreak(p))
}

// TestReachable exercises the bound's feasibility test: a fresh fit in the
// remaining slots, a suffix-prefix overlap rescue, and a dead end.
func TestReachable(t *testing.T) {
	p := buildPuzzle(t, puzzle.NewBuilder().
		GridRow("1C", "55", "BD").
		Daemon("1C", "55").
		Daemon("BD", "E9").
		BufferSize(3))
	e := newEngine(p, DefaultOptions(), true)

	// Nothing placed yet: both daemons fit fresh.
	assert.True(t, e.reachable(0, 0))
	assert.True(t, e.reachable(0, 1))

	// Two symbols placed, one slot left: a fresh fit is impossible, so only
	// a matching one-symbol prefix already in the buffer can rescue a daemon.
	e.buffer[0] = symbol.Hex55
	e.buffer[1] = symbol.Hex1C
	assert.True(t, e.reachable(2, 0), "buffer ends in 1C, prefix of [1C 55]")
	assert.False(t, e.reachable(2, 1), "no prefix of [BD E9] in the buffer")
}

// TestRound1e9 pins the stabilization contract used by every objective
// comparison.
func TestRound1e9(t *testing.T) {
	assert.Equal(t, 2.1, round1e9(2.1000000004))
	assert.Equal(t, 2.1, round1e9(2.0999999996))
	assert.Equal(t, 0.0, round1e9(4e-10))
}

// TestEngine_IncumbentAtEveryPrefix: the optimum here is a strict prefix of
// a longer legal path, so it is only found if every node updates the
// incumbent. Placing [1C 55] pays immediately; extending to a third cell
// only burns the spare slot.
func TestEngine_IncumbentAtEveryPrefix(t *testing.T) {
	p := buildPuzzle(t, puzzle.NewBuilder().
		GridRow("1C", "BD").
		GridRow("55", "E9").
		Daemon("1C", "55").
		BufferSize(3))

	e := newEngine(p, DefaultOptions(), false)
	e.run()

	require.Len(t, e.bestPath, 2)
	assert.Equal(t, 2, e.bestReward)
}
