package playback

import (
	"maps"
	"slices"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/core"
)

// Status lines shown by the frame.
const (
	StatusNoPath     = "NO PATH FOUND"
	StatusPathPrefix = "PATH: "
)

// NodeState is the drawing state of a vertex.
type NodeState int

const (
	NodeIdle NodeState = iota
	NodeVisited
	NodePath
)

// EdgeState is the drawing state of an edge.
type EdgeState int

const (
	EdgeIdle EdgeState = iota
	EdgeExplored
	EdgePath
)

// EdgeKey identifies an edge. For symmetric graphs From < To always holds.
type EdgeKey struct {
	From, To int
}

// Frame is the cumulative picture after a prefix of steps.
type Frame struct {
	Graph  *core.Graph
	Nodes  []NodeState
	Edges  map[EdgeKey]EdgeState
	Status string
	// Path holds the listing once OpShowPath has been applied.
	Path bfs.Path
	// Last is the most recently applied step; Applied counts steps so far.
	Last    *Step
	Applied int
}

// NewFrame returns the idle frame for g.
func NewFrame(g *core.Graph) *Frame {
	n := 0
	if g != nil {
		n = g.VertexCount()
	}

	return &Frame{
		Graph: g,
		Nodes: make([]NodeState, n),
		Edges: make(map[EdgeKey]EdgeState),
	}
}

// Key normalises u→v for the frame's graph.
func (f *Frame) Key(u, v int) EdgeKey {
	if f.Graph != nil && f.Graph.Symmetric() && u > v {
		u, v = v, u
	}

	return EdgeKey{From: u, To: v}
}

// Node returns the state of vertex id, NodeIdle when out of range.
func (f *Frame) Node(id int) NodeState {
	if id < 0 || id >= len(f.Nodes) {
		return NodeIdle
	}

	return f.Nodes[id]
}

// Edge returns the state of edge u→v.
func (f *Frame) Edge(u, v int) EdgeState { return f.Edges[f.Key(u, v)] }

// Apply folds s into the frame. Path states are never downgraded.
func (f *Frame) Apply(s Step) {
	switch s.Op {
	case OpVisitNode:
		f.setNode(s.Node, NodeVisited)
	case OpExploreEdge:
		f.setEdge(s.From, s.To, EdgeExplored)
	case OpPathEdge:
		f.setEdge(s.From, s.To, EdgePath)
	case OpPathNode:
		f.setNode(s.Node, NodePath)
	case OpShowPath:
		f.Path = slices.Clone(s.Path)
		f.Status = StatusPathPrefix + s.Path.String()
	case OpNoPath:
		f.Status = StatusNoPath
	}
	last := s
	f.Last = &last
	f.Applied++
}

func (f *Frame) setNode(id int, st NodeState) {
	if id < 0 || id >= len(f.Nodes) || f.Nodes[id] > st {
		return
	}
	f.Nodes[id] = st
}

func (f *Frame) setEdge(u, v int, st EdgeState) {
	k := f.Key(u, v)
	if f.Edges[k] > st {
		return
	}
	f.Edges[k] = st
}

// Clone returns an independent copy sharing only the Graph.
func (f *Frame) Clone() *Frame {
	out := &Frame{
		Graph:   f.Graph,
		Nodes:   slices.Clone(f.Nodes),
		Edges:   maps.Clone(f.Edges),
		Status:  f.Status,
		Path:    slices.Clone(f.Path),
		Applied: f.Applied,
	}
	if f.Last != nil {
		last := *f.Last
		out.Last = &last
	}

	return out
}

// Replay builds the frame obtained by applying steps[:n] to a fresh frame of g.
func Replay(g *core.Graph, steps []Step, n int) *Frame {
	f := NewFrame(g)
	if n > len(steps) {
		n = len(steps)
	}
	for _, s := range steps[:max(n, 0)] {
		f.Apply(s)
	}

	return f
}
