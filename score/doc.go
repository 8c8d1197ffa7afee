// Package score is the independent scoring oracle for breach-protocol paths.
//
// Score deterministically computes, for any candidate path over a puzzle,
// the buffer contents, the set of activated daemons and the total reward.
// It knows nothing about how the path was produced, which makes it usable
// both as the optimizer's own correctness check and as a standalone
// validator for paths coming from anywhere else. Search strategies may be
// swapped or approximated; this package stays the one trusted definition
// of "correct".
//
// ValidatePath separately checks the movement legality of a path (start in
// row 0, column/row alternation, no cell reuse, buffer bound). Score itself
// only rejects structurally broken input (empty paths and out-of-grid
// coordinates) so that externally produced paths can be re-scored even
// when they ignore the movement rules.
package score
