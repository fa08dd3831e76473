package playback

import (
	"fmt"
	"time"

	"github.com/katalvlaran/bfsviz/bfs"
)

// Op identifies what a Step draws.
type Op int

const (
	// OpVisitNode marks Node as visited (dequeued).
	OpVisitNode Op = iota
	// OpExploreEdge marks edge From→To as explored.
	OpExploreEdge
	// OpPathEdge highlights path edge From→To.
	OpPathEdge
	// OpPathNode highlights path vertex Node.
	OpPathNode
	// OpShowPath displays the path listing.
	OpShowPath
	// OpNoPath displays the no-path message.
	OpNoPath
)

var opNames = [...]string{"visit", "explore", "path-edge", "path-node", "show-path", "no-path"}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}

	return opNames[o]
}

// Step is a single drawing instruction followed by a pause of Delay.
// Node is set for node ops, From/To for edge ops (otherwise -1); Path is set
// for OpShowPath.
type Step struct {
	Op    Op
	Node  int
	From  int
	To    int
	Path  bfs.Path
	Delay time.Duration
}

// String renders the step compactly, e.g. "visit 0", "path-edge 0->1".
func (s Step) String() string {
	switch s.Op {
	case OpVisitNode, OpPathNode:
		return fmt.Sprintf("%s %d", s.Op, s.Node)
	case OpExploreEdge, OpPathEdge:
		return fmt.Sprintf("%s %d->%d", s.Op, s.From, s.To)
	case OpShowPath:
		return fmt.Sprintf("%s %s", s.Op, s.Path)
	default:
		return s.Op.String()
	}
}

// Compile converts res into the step list the player animates.
//
// Implementation:
//   - Stage 1: one step per event in res.Events, same order.
//   - Stage 2: if res.ReachedEnd, path edges start→end, then path nodes
//     end→start, then OpShowPath carrying the path.
//   - Stage 3: otherwise OpNoPath.
//
// A nil res yields nil.
func Compile(res *bfs.Result, timing Timing) []Step {
	if res == nil {
		return nil
	}
	steps := make([]Step, 0, len(res.Events)+2*len(res.Order)+1)

	// Stage 1: event replay
	for e := range res.Replay() {
		switch e.Kind {
		case bfs.NodeVisited:
			steps = append(steps, Step{Op: OpVisitNode, Node: e.To, From: -1, To: -1, Delay: timing.Visit})
		case bfs.EdgeExplored:
			steps = append(steps, Step{Op: OpExploreEdge, Node: -1, From: e.From, To: e.To, Delay: timing.Explore})
		}
	}

	// Stage 2: path highlight
	path, err := res.PathTo(res.End)
	if !res.ReachedEnd || err != nil {
		// Stage 3
		return append(steps, Step{Op: OpNoPath, Node: -1, From: -1, To: -1})
	}
	for _, e := range path.Edges() {
		steps = append(steps, Step{Op: OpPathEdge, Node: -1, From: e[0], To: e[1], Delay: timing.PathEdge})
	}
	for i := len(path) - 1; i >= 0; i-- {
		steps = append(steps, Step{Op: OpPathNode, Node: path[i], From: -1, To: -1, Delay: timing.PathNode})
	}

	return append(steps, Step{Op: OpShowPath, Node: -1, From: -1, To: -1, Path: path})
}
