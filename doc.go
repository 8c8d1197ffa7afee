// Package breach solves the "Breach Protocol" code-matrix minigame: given a
// grid of hex codes, a set of daemon sequences worth points, and a bounded
// buffer, it finds the highest-value sequence of cells to pick.
//
// 🚀 What is breach?
//
//	A deterministic combinatorial optimizer with an independent scoring
//	oracle, organized as small focused subpackages:
//		• symbol   — the closed int8 alphabet of game codes (+ Blank/Stop)
//		• puzzle   — mutable Builder → immutable, validated Puzzle
//		• score    — the one trusted definition of path scoring & legality
//		• solution — Solution / NoSolution results and the assembler
//		• solve    — exhaustive and branch-and-bound search engines
//		• puzzlefile — YAML puzzle documents for the CLI and tests
//
// ✨ Why this layout?
//
//   - Strict sentinels everywhere — every failure is errors.Is-comparable
//   - One-way lifecycle — nothing partially validated reaches a solver
//   - Oracle-checked results — a Solution can never disagree with score
//   - Deterministic search — identical inputs give identical answers
//
// Movement rules: the first pick must come from row 0; afterwards picks
// alternate between the previous cell's column and row; no cell twice;
// stopping early is always allowed. Daemons activate on any contiguous
// occurrence in the buffer and their rewards add up.
//
// Quick example:
//
//	p, err := puzzle.NewBuilder().
//		GridRow("1C", "55").
//		GridRow("55", "1C").
//		Daemon("1C", "55").
//		BufferSize(2).
//		Build()
//	...
//	res, stats, err := solve.Solve(p, solve.DefaultOptions())
//
// The cmd/breach command wraps all of this for puzzle files on disk.
package breach
