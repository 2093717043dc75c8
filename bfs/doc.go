// Package bfs answers reachability questions over a core.Graph: is there
// any route, regardless of travel time, from one intersection to another?
//
// What
//
//   - ExistsRoute(g, origin, destination) performs a breadth-first
//     traversal from origin over a first-in-first-out frontier and
//     reports whether destination is ever reached.
//   - Each intersection is enqueued at most once: it is marked visited at
//     enqueue time, never later. On dense graphs this is a correctness
//     requirement (it prevents duplicate enqueuing), not a style choice.
//   - The destination is matched against the dequeued intersection, so
//     ExistsRoute(x, x) is trivially true for any existing x: the origin
//     is dequeued and compared on the very first iteration.
//
// Determinism
//
//	core.Neighbors returns destinations in ascending order and the
//	frontier preserves insertion order, so the visit sequence observed
//	through the hooks is fully reproducible.
//
// Complexity (V = intersections, E = streets)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the frontier and the visited set
//
// Errors
//
//   - ErrGraphNil                   if the graph pointer is nil.
//   - core.ErrInvalidName           if either name is blank.
//   - core.ErrIntersectionNotFound  if either endpoint is absent
//     (wrapped with which endpoint failed).
package bfs
