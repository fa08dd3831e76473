// SPDX-License-Identifier: MIT

// Package builder generates adjacency matrices for well-known topologies, so
// graph files for the visualizer can be produced instead of typed by hand.
//
// What
//
//   - Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid and
//     RandomSparse constructors, composed through Build.
//   - ByName resolves a topology from its CLI name.
//   - Undirected by default (both matrix entries set); WithDirected emits
//     only the documented forward direction of every edge.
//
// Determinism
//
//	Edges are emitted in a fixed order; RandomSparse is reproducible for a
//	fixed seed (WithSeed) and option order.
//
// Limits
//
//	Every constructor validates its size against core.MinVertices and
//	core.MaxVertices, so any matrix it returns is loadable.
//
// Usage
//
//	a, err := builder.Build(builder.Wheel(6))
//	a, err = builder.Build(builder.RandomSparse(10, 0.3), builder.WithSeed(7), builder.WithDirected())
package builder
