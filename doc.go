// Package trafficgraph models a road network as a weighted graph of
// intersections and streets, with edge weights expressed as travel time
// in minutes.
//
// What you get:
//
//   - core/     — the TrafficGraph data model: validated identifiers and
//     weights, mutation (add/remove intersection or street), inspection,
//     and a deterministic text rendering of the network
//   - bfs/      — reachability between two intersections (breadth-first)
//   - dfs/      — exhaustive simple-path enumeration from an intersection
//     (depth-first, cycle-avoiding)
//   - dijkstra/ — fastest route between two intersections (non-negative
//     weight relaxation over a min-heap)
//   - seed/     — load an initial network from a YAML adjacency mapping
//
// The engine is a teaching-oriented data structure, not an operational
// system: in-memory only, single-owner, no persistence and no internal
// locking. The bundled CLI (cmd/) is a thin interactive menu over the
// same API; any other front end can drive the engine the same way and
// render its error values independently.
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddStreet("A", "B", 3.5)
//	_ = g.AddStreet("B", "C", 2)
//	_ = g.AddStreet("A", "C", 10)
//	route, _ := dijkstra.FastestRoute(g, "A", "C")
//	// route.Path == [A B C], route.TotalTime == 5.5
package main
