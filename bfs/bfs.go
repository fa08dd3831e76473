package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bfsviz/core"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state for a single run.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// Run performs BFS on g from start, stopping as soon as end is dequeued.
//
// For each dequeued vertex a NodeVisited event is recorded; if it is end the
// walk stops without exploring its neighbors. Otherwise every unvisited
// neighbor, in ascending id order, is marked, given its parent, enqueued and
// recorded as an EdgeExplored event.
//
// Returns ErrGraphNil, ErrInvalidVertex (no traversal performed),
// ErrOptionViolation, the context error on cancellation, or a wrapped
// OnEvent error.
func Run(g *core.Graph, start, end int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.ValidVertex(start) || !g.ValidVertex(end) {
		return nil, fmt.Errorf("%w: start=%d end=%d (vertex count %d)", ErrInvalidVertex, start, end, g.VertexCount())
	}

	return walk(g, start, end, opts)
}

// Explore performs BFS on g from start with no target: the walk continues
// until every vertex reachable from start has been visited.
func Explore(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.ValidVertex(start) {
		return nil, fmt.Errorf("%w: start=%d (vertex count %d)", ErrInvalidVertex, start, g.VertexCount())
	}

	return walk(g, start, NoTarget, opts)
}

// walk applies options, seeds the queue and runs the main loop.
func walk(g *core.Graph, start, end int, opts []Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:   start,
			End:     end,
			Order:   make([]int, 0, n),
			Visited: make(map[int]bool, n),
			Depth:   make(map[int]int, n),
			Parent:  make(map[int]int, n),
			Events:  make([]Event, 0, 2*n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.res.Visited[start] = true
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{id: start, depth: 0})

	err := w.loop()
	if end != NoTarget {
		w.res.ReachedEnd = w.res.Visited[end]
	}
	if err != nil {
		return nil, err
	}

	return w.res, nil
}

// loop processes the queue until empty, target reached, error or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.emit(Event{Kind: NodeVisited, From: -1, To: item.id, Depth: item.depth}); err != nil {
			return err
		}
		if item.id == w.res.End {
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item and records it in Order.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.res.Order = append(w.res.Order, item.id)

	return item
}

// enqueueNeighbors discovers every unvisited neighbor of item in ascending id order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if w.res.Visited[nbr] {
			continue
		}
		w.res.Visited[nbr] = true
		w.res.Parent[nbr] = item.id
		w.res.Depth[nbr] = nextDepth
		w.queue = append(w.queue, queueItem{id: nbr, depth: nextDepth})
		if err := w.emit(Event{Kind: EdgeExplored, From: item.id, To: nbr, Depth: nextDepth}); err != nil {
			return err
		}
	}

	return nil
}

// emit appends e to the log and calls OnEvent.
func (w *walker) emit(e Event) error {
	w.res.Events = append(w.res.Events, e)
	if err := w.opts.OnEvent(e); err != nil {
		return fmt.Errorf("bfs: OnEvent error at %s: %w", e, err)
	}

	return nil
}
