// File: methods_edges.go
// Role: Edge queries over the adjacency matrix.
//
// Determinism:
//   - Neighbors() ascends by vertex id; Edges() follows row-major order.
package core

// Edge is a drawable connection u→v. For symmetric graphs From < To and the
// edge stands for both directions.
type Edge struct {
	From, To int
}

// HasEdge reports whether adjacency[u][v] is set.
func (g *Graph) HasEdge(u, v int) bool { return g.adjacency.Has(u, v) }

// Neighbors returns every v with adjacency[u][v] set, in ascending id order.
// An invalid u yields nil.
//
// Complexity:
//   - Time O(n), Space O(deg(u)).
func (g *Graph) Neighbors(u int) []int {
	if !g.ValidVertex(u) {
		return nil
	}
	var out []int
	for v := 0; v < g.vertexCount; v++ {
		if g.adjacency.Has(u, v) {
			out = append(out, v)
		}
	}

	return out
}

// Edges returns the edges to draw.
//
// Behavior highlights:
//   - Symmetric graph: each unordered pair once (i < j); self-loops are not drawn.
//   - Directed graph: every set entry u→v, self-loops included.
//
// Complexity:
//   - Time O(n²), Space O(E).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for i := 0; i < g.vertexCount; i++ {
		j := 0
		if g.symmetric {
			j = i + 1
		}
		for ; j < g.vertexCount; j++ {
			if g.adjacency.Has(i, j) {
				out = append(out, Edge{From: i, To: j})
			}
		}
	}

	return out
}
