// Package dfs enumerates every simple path through a core.Graph starting
// at a given intersection, using a cycle-avoiding depth-first search.
//
// What
//
//   - ListPaths(g, origin) returns every simple path (no repeated
//     intersection) starting at origin — including every partial prefix
//     as its own entry. The result contains one path per edge-traversal
//     step of every branch, not only maximal paths: for A→B→C the result
//     is [A B] and [A B C], in that order. This prefix-per-entry shape is
//     deliberate, observable behavior.
//   - Cycle avoidance is membership in the current path prefix: an
//     intersection already on the prefix is never revisited, so the
//     enumeration terminates on cyclic graphs.
//   - Neighbors are expanded in ascending destination order, making the
//     result sequence fully deterministic.
//
// Scale
//
//	The number of simple paths can grow exponentially with graph density.
//	This is a small-graph diagnostic, not a production algorithm; use
//	WithMaxDepth to bound the enumeration on anything dense.
//
// Errors
//
//   - ErrGraphNil                   if the graph pointer is nil.
//   - ErrOptionViolation            if an invalid Option is supplied.
//   - core.ErrInvalidName           if origin is blank.
//   - core.ErrIntersectionNotFound  if origin is absent.
//   - Wrapped user-supplied hook errors from OnPath.
package dfs
