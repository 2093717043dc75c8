// Package seed loads an initial traffic network from a YAML rendition of
// the nested origin→{destination→minutes} adjacency mapping:
//
//	A:
//	  B: 3.5
//	  C: 10
//	B:
//	  C: 2
//
// Decoding is strict about shape: anything that is not a mapping of
// mappings with numeric leaves wraps core.ErrBadAdjacency. The decoded
// mapping is handed to core.FromAdjacency, so every name and weight gets
// exactly the AddStreet validation, and destination-only intersections
// (like C above) exist in the resulting graph.
package seed
