// Package audit pairs original and canonical issue listings, dispatches
// the per-issue checks as independent units of work, and merges their
// results into per-journal reports.
//
// Execution is embarrassingly parallel: each unit of work reads only its
// own pair of filesystem locations and returns an immutable result value.
// The only synchronization point is the final merge, which is associative
// and commutative, so worker completion order never changes the totals.
// A per-issue failure is converted into a case, never into a run failure.
package audit
