// Package solution assembles and represents solver results.
//
// A solver produces at most a winning path; everything else (the buffer
// contents, the active-daemon set, the total points) is derived here by
// the scoring oracle (package score) so that a Solution can never disagree
// with the one trusted definition of correctness.
//
// The two result kinds are:
//
//   - Solution — immutable, always carries a non-empty legal path and a
//     strictly positive total. A zero-reward Solution cannot be built.
//   - NoSolution — a human-readable reason why no rewarding path exists.
//     It is data, not an error: a well-posed puzzle with no answer is a
//     normal outcome.
//
// Both implement the sealed Result interface, so callers switch on the
// concrete type.
package solution
