package bfs

import (
	"context"
	"errors"
	"fmt"
	"iter"
)

// NoTarget is the End of a Result produced by Explore.
const NoTarget = -1

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrInvalidVertex is returned when start or end lies outside [0, VertexCount).
	ErrInvalidVertex = errors.New("bfs: invalid start or end vertex")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotFound is returned by Reconstruct when the end vertex was never visited.
	ErrNotFound = errors.New("bfs: no path found")
)

// EventKind distinguishes the two traversal events.
type EventKind int

const (
	// NodeVisited is emitted when a vertex is dequeued.
	NodeVisited EventKind = iota
	// EdgeExplored is emitted when an edge discovers an unvisited vertex.
	EdgeExplored
)

// String returns "visit" or "explore".
func (k EventKind) String() string {
	switch k {
	case NodeVisited:
		return "visit"
	case EdgeExplored:
		return "explore"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one entry of the traversal log.
//   - NodeVisited: To is the visited vertex, From is -1.
//   - EdgeExplored: From→To is the tree edge that discovered To.
//
// Depth is the BFS layer of To.
type Event struct {
	Kind     EventKind
	From, To int
	Depth    int
}

// String renders "visit 2" or "explore 0->1".
func (e Event) String() string {
	if e.Kind == EdgeExplored {
		return fmt.Sprintf("%s %d->%d", e.Kind, e.From, e.To)
	}

	return fmt.Sprintf("%s %d", e.Kind, e.To)
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation; it is checked once per dequeue.
	Ctx context.Context

	// OnEvent is called for each event right after it is recorded.
	// If it returns an error, BFS aborts and propagates that error.
	OnEvent func(Event) error

	// MaxDepth, if > 0, stops discovering vertices beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no-op hook
// and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnEvent:  func(Event) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEvent registers a callback run for every event in emission order.
func WithOnEvent(fn func(Event) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEvent = fn
		}
	}
}

// WithMaxDepth bounds discovery depth.
//
//	d > 0: vertices deeper than d are never discovered
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of one BFS run:
//   - Order: vertices in dequeue (visit) order.
//   - Visited: every vertex discovered, including ones still queued at stop.
//   - Depth: BFS layer of every discovered vertex.
//   - Parent: discoverer of every discovered vertex except Start.
//   - Events: the full NodeVisited/EdgeExplored log in emission order.
//   - ReachedEnd: End was discovered (always false for Explore).
type Result struct {
	Start, End int
	Order      []int
	Visited    map[int]bool
	Depth      map[int]int
	Parent     map[int]int
	Events     []Event
	ReachedEnd bool
}

// Replay yields the buffered events in emission order. The sequence can be
// iterated any number of times; each iteration starts from the first event.
func (r *Result) Replay() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for _, e := range r.Events {
			if !yield(e) {
				return
			}
		}
	}
}

// PathTo reconstructs the path from Start to dest.
// Returns ErrNotFound if dest was not discovered.
func (r *Result) PathTo(dest int) (Path, error) {
	return Reconstruct(r.Parent, r.Start, dest)
}
