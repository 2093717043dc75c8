// Package dijkstra computes the fastest route between two intersections
// of a core.Graph using single-source relaxation over non-negative travel
// times (Dijkstra's algorithm).
//
// What
//
//   - FastestRoute(g, origin, destination) returns the minimum-time path
//     and its total travel time. The path's street weights sum exactly to
//     the returned total.
//   - An unreachable destination is NOT an error: the result is an empty
//     path with a total of +Inf.
//   - Weight validity (finite, strictly positive) is a core invariant, so
//     no negative-weight pre-scan is needed here.
//
// Determinism
//
//	Among intersections with equal current distance the heap orders by
//	name ascending, so selection — and therefore the returned path — is
//	deterministic for a given graph.
//
// Algorithm
//
//	Lazy-decrease-key min-heap: distances start at +Inf except the origin
//	(0); the cheapest unfinalized intersection is popped, finalized, and
//	its outgoing streets relaxed; improved neighbors are pushed as fresh
//	heap entries and stale entries are skipped when popped. The loop
//	stops early as soon as the destination is finalized. Intersections
//	that never receive a finite distance are never pushed, which is the
//	"stop on infinite distance" rule of the linear-scan formulation.
//
// Complexity (V = intersections, E = streets)
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) under lazy-decrease-key
//
// Errors
//
//   - ErrGraphNil                   if the graph pointer is nil.
//   - ErrBadMaxTime                 if WithMaxTime is given a non-positive cap.
//   - core.ErrInvalidName           if either name is blank.
//   - core.ErrIntersectionNotFound  if either endpoint is absent.
package dijkstra
