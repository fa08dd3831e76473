package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bfsviz/matrix"
)

// Vertex-count bounds accepted from a graph file.
const (
	MinVertices = 2
	MaxVertices = 15
)

// Sentinel errors for graph model operations.
var (
	// ErrInvalidVertexCount indicates a vertex count outside [MinVertices, MaxVertices].
	ErrInvalidVertexCount = errors.New("core: invalid vertex count")

	// ErrMalformedMatrix indicates fewer than n² matrix entries, unreadable tokens or entries other than 0/1.
	ErrMalformedMatrix = errors.New("core: malformed adjacency matrix")

	// ErrNilAdjacency indicates NewGraph was given a nil matrix.
	ErrNilAdjacency = errors.New("core: adjacency matrix is nil")

	// ErrBadCanvas indicates a canvas with a non-positive radius or a frame too small to hold a node.
	ErrBadCanvas = errors.New("core: invalid canvas")
)

// Vertex is a placed node: its canvas position and its label.
// Label equals the vertex id, assigned 0..n-1 in placement order.
type Vertex struct {
	X, Y  float64
	Label int
}

// Canvas is the rectangular drawing frame vertices are placed in.
// Left/Top/Right/Bottom bound the frame; Radius is the drawn node radius.
type Canvas struct {
	Left, Top, Right, Bottom float64
	Radius                   float64
}

// DefaultCanvas returns the reference 540×360 frame at (10,10) with radius 20.
func DefaultCanvas() Canvas {
	return Canvas{Left: 10, Top: 10, Right: 550, Bottom: 370, Radius: 20}
}

// Validate checks the radius is positive and the frame can hold one node.
func (c Canvas) Validate() error {
	if !(c.Radius > 0) || math.IsInf(c.Radius, 0) {
		return fmt.Errorf("radius %v: %w", c.Radius, ErrBadCanvas)
	}
	if c.Right-c.Left < 2*c.Radius || c.Bottom-c.Top < 2*c.Radius {
		return fmt.Errorf("frame (%v,%v)-(%v,%v) smaller than one node: %w",
			c.Left, c.Top, c.Right, c.Bottom, ErrBadCanvas)
	}

	return nil
}

// Contains reports whether a node centred at (x,y) fits entirely inside the frame.
func (c Canvas) Contains(x, y float64) bool {
	return x >= c.Left+c.Radius && x <= c.Right-c.Radius &&
		y >= c.Top+c.Radius && y <= c.Bottom-c.Radius
}

// MinSpacing is the smallest centre-to-centre distance allowed between two nodes.
func (c Canvas) MinSpacing() float64 { return 3 * c.Radius }

// Width and Height of the frame.
func (c Canvas) Width() float64  { return c.Right - c.Left }
func (c Canvas) Height() float64 { return c.Bottom - c.Top }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCanvas sets the placement canvas (default DefaultCanvas()).
func WithCanvas(c Canvas) GraphOption {
	return func(g *Graph) { g.canvas = c }
}

// Graph is the loaded graph plus its (possibly partial) vertex placement.
//
// Invariants:
//   - adjacency.Size() == vertexCount, MinVertices ≤ vertexCount ≤ MaxVertices.
//   - len(vertices) ≤ vertexCount; vertices[i].Label == i.
//   - symmetric is computed once from adjacency and never changes.
type Graph struct {
	vertexCount int
	vertices    []Vertex
	adjacency   *matrix.Adjacency
	symmetric   bool
	canvas      Canvas
}

// NewGraph creates a Graph over a copy of adj with no vertices placed.
//
// Implementation:
//   - Stage 1: Validate adj non-nil and its size within [MinVertices, MaxVertices].
//   - Stage 2: Apply options and validate the canvas.
//   - Stage 3: Compute the symmetry flag (short-circuits on first mismatch).
//
// Errors:
//   - ErrNilAdjacency, ErrInvalidVertexCount, ErrBadCanvas.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewGraph(adj *matrix.Adjacency, opts ...GraphOption) (*Graph, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	n := adj.Size()
	if n < MinVertices || n > MaxVertices {
		return nil, fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidVertexCount, n, MinVertices, MaxVertices)
	}

	g := &Graph{
		vertexCount: n,
		vertices:    make([]Vertex, 0, n),
		adjacency:   adj.Clone(),
		canvas:      DefaultCanvas(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.canvas.Validate(); err != nil {
		return nil, err
	}
	g.symmetric = g.adjacency.IsSymmetric()

	return g, nil
}

// VertexCount returns n, the number of vertices declared by the graph file.
func (g *Graph) VertexCount() int { return g.vertexCount }

// Symmetric reports whether the adjacency matrix is symmetric (undirected drawing).
func (g *Graph) Symmetric() bool { return g.symmetric }

// Directed is the negation of Symmetric: asymmetric graphs are drawn with arrowheads.
func (g *Graph) Directed() bool { return !g.symmetric }

// Canvas returns the placement canvas.
func (g *Graph) Canvas() Canvas { return g.canvas }

// Adjacency returns a copy of the adjacency matrix.
func (g *Graph) Adjacency() *matrix.Adjacency { return g.adjacency.Clone() }

// ValidVertex reports whether 0 ≤ id < VertexCount().
func (g *Graph) ValidVertex(id int) bool { return id >= 0 && id < g.vertexCount }
