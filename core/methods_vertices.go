// File: methods_vertices.go
// Role: Vertex placement & queries.
//
// Determinism:
//   - Labels follow placement order; Vertices() returns them in label order.
package core

import "math"

// PlaceVertex places the next vertex at (x,y) if the position is acceptable.
//
// Implementation:
//   - Stage 1: Reject when all VertexCount() vertices are already placed.
//   - Stage 2: Reject when the node would not fit inside the canvas frame.
//   - Stage 3: Reject when closer than Canvas.MinSpacing() to any placed vertex.
//   - Stage 4: Append the vertex with Label = number placed so far.
//
// Returns:
//   - bool: true when placed; false leaves the graph unchanged.
//
// Complexity:
//   - Time O(n), Space O(1) amortized.
func (g *Graph) PlaceVertex(x, y float64) bool {
	if g.Complete() {
		return false
	}
	if math.IsNaN(x) || math.IsNaN(y) || !g.canvas.Contains(x, y) {
		return false
	}
	minDist := g.canvas.MinSpacing()
	for _, v := range g.vertices {
		if math.Hypot(v.X-x, v.Y-y) < minDist {
			return false
		}
	}
	g.vertices = append(g.vertices, Vertex{X: x, Y: y, Label: len(g.vertices)})

	return true
}

// ResetPlacement discards every placed vertex; the matrix is kept.
func (g *Graph) ResetPlacement() {
	g.vertices = g.vertices[:0]
}

// Placed returns how many vertices have been placed.
func (g *Graph) Placed() int { return len(g.vertices) }

// Complete reports whether every vertex has been placed.
func (g *Graph) Complete() bool { return len(g.vertices) == g.vertexCount }

// Vertices returns a copy of the placed vertices in label order.
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Vertex returns the placed vertex with the given id.
// ok is false when id is invalid or not yet placed.
func (g *Graph) Vertex(id int) (v Vertex, ok bool) {
	if id < 0 || id >= len(g.vertices) {
		return Vertex{}, false
	}

	return g.vertices[id], true
}
