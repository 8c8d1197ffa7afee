// Package puzzle models a single breach-protocol instance.
//
// It provides two types with a strict one-way lifecycle:
//
//   - Builder — the mutable pre-validation stage. It accumulates raw rows of
//     symbol labels, daemon sequences, optional costs and a buffer size, the
//     shape the screen reader naturally produces. Nothing is checked until
//     Build is called.
//
//   - Puzzle — the immutable, fully validated instance. Build runs every
//     structural check once (rectangular grid, alphabet membership, cost
//     counts, positive buffer size), normalizes labels to symbol values,
//     right-pads daemons with symbol.Stop to a common length, and deep-copies
//     everything so partially validated data can never leak into solvers.
//
// All failures are sentinel errors (errors.Is-friendly); construction never
// panics on user input.
//
// Coordinates use (Row, Col) with row 0 at the top, matching the on-screen
// grid; a Path is the ordered list of selected cells.
package puzzle
