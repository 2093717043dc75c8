// Package core provides the TrafficGraph data model: an owned, in-memory
// directed-or-undirected weighted graph of named intersections connected by
// streets, where every weight is a travel time in minutes.
//
// What
//
//   - Validated boundary types: NodeID (non-blank intersection name) and
//     Minutes (finite, strictly positive travel time). Invalid values are
//     rejected at parse time and again at every method entry, so a raw
//     conversion of a bad value still fails at the first call.
//   - Mutation: AddIntersection (idempotent), RemoveIntersection (removes
//     every inbound street too), AddStreet (auto-creates endpoints,
//     overwrites the weight), RemoveStreet.
//   - Inspection: Intersections, Streets, Neighbors, HasIntersection,
//     HasStreet, NodeCount, EdgeCount, Render.
//   - Seeding: FromAdjacency builds a graph from a nested
//     origin→{destination→minutes} mapping, applying AddStreet validation
//     edge by edge and copying field-by-field (never aliasing the input).
//
// Determinism
//
//	Intersections() returns names in ascending lexical order; Neighbors()
//	returns destinations in ascending order; Render() emits one line per
//	intersection in ascending order with weights to two decimal places.
//
// Directedness
//
//	Fixed at construction via WithDirected. On an undirected graph every
//	street insertion is mirrored in both directions and every removal
//	removes both directions, so adjacency stays mirror-symmetric with
//	equal weights after every mutation.
//
// Concurrency
//
//	None. The graph is a single-owner structure with no internal locking;
//	callers needing concurrent access must synchronize externally. Query
//	results are independent copies, never aliases into internal state.
//
// Errors
//
//   - ErrInvalidName          — name is empty or whitespace-only.
//   - ErrInvalidWeight        — travel time is NaN, infinite, zero or negative.
//   - ErrIntersectionNotFound — operation references an absent intersection.
//   - ErrStreetNotFound       — operation references an absent street.
//   - ErrBadAdjacency         — malformed initial adjacency input.
//
// All validation failures surface synchronously at the offending call, and
// a mutation that fails validation is never partially applied.
package core
