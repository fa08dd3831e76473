// Package core is the graph model of the BFS visualizer: a small graph
// (2..15 vertices) read from a file, whose vertices are then placed one by
// one on a drawing canvas.
//
// The Graph G = (V,E) holds:
//
//   - a square boolean adjacency matrix (matrix.Adjacency), entry (u,v)
//     meaning the edge u→v exists;
//   - the symmetry flag inferred once at construction: a symmetric matrix is
//     drawn undirected, any asymmetric pair makes the graph directed (this
//     affects arrowheads only, never traversal);
//   - the placed vertices, labelled 0..n-1 in placement order.
//
// Placement
//
//	PlaceVertex(x, y) accepts a point only if it lies inside the canvas
//	frame inset by the node radius and is at least 3×radius away from every
//	vertex already placed. Rejections are silent and leave the graph
//	unchanged; once all n vertices are placed every further call is rejected.
//
// Loading
//
//	Load reads whitespace/newline-delimited integers: the vertex count n
//	(2 ≤ n ≤ 15, else ErrInvalidVertexCount) followed by n² matrix entries in
//	row-major order, each 0 or 1 (else ErrMalformedMatrix).
//
// Determinism
//
//	Neighbors() and Edges() enumerate in ascending vertex id / row-major
//	order, so every traversal and drawing built on them is reproducible.
//
// Ownership
//
//	A Graph belongs to one session at a time and carries no locks; callers
//	own it exclusively, replacing it on a new load instead of resetting it.
package core
