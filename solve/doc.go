// Package solve searches for the highest-value breach-protocol path.
//
// The optimizer explores the legal-move state space of a puzzle (start in
// row 0, then alternate column/row moves, never reuse a cell, stop at the
// buffer bound) and maximizes, in order:
//
//  1. the total reward of activated daemons, and
//  2. fewer buffer cells used among equally rewarding paths.
//
// The secondary criterion is folded into the objective as a tie-break
// weight ε per unused buffer slot, with ε chosen strictly smaller than any
// daemon's per-symbol reward rate (ε = 0.1·min(cost/length)), so saving
// buffer space can never outbid a daemon activation.
//
// Two engines realize the identical movement and reward rules:
//
//   - Exhaustive — plain depth-first enumeration, useful as a reference and
//     fastest on tiny instances.
//   - BranchAndBound — the same search with an admissible reward upper
//     bound per node: current reward, plus the cost of every inactive
//     daemon that can still fit into the remaining buffer (fresh or
//     overlapping the already matched suffix), plus the optimistic ε term.
//     Branches whose bound cannot beat the incumbent (within the gap
//     tolerance) are pruned.
//
// Auto picks between them by instance size. Search is deterministic: cells
// are branched in ascending index order and ties keep the first incumbent.
//
// A wall-clock budget is honored cooperatively: exceeding it returns the
// best incumbent found so far (flagged in Stats), never an error. Faults of
// the machinery itself surface as ErrEngine, kept strictly distinct from
// the data-level "no solution" outcome.
package solve
