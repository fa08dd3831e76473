// Package bfs provides the breadth-first search engine of the visualizer over
// a core.Graph, together with shortest-path reconstruction.
//
// What
//
//   - Run(g, start, end) walks from start and stops as soon as end is dequeued.
//   - Explore(g, start) walks the whole component reachable from start.
//   - Returns a Result containing:
//   - Order:   dequeue sequence
//   - Visited: every discovered vertex
//   - Depth:   vertex → distance (edges) from start
//   - Parent:  vertex → its discoverer in the BFS tree (start has none)
//   - Events:  NodeVisited / EdgeExplored log, replayable via Result.Replay
//   - Reconstruct(parent, start, end) / Result.PathTo(end) rebuild the path.
//
// Why
//
//   - The engine is pure: it neither renders nor sleeps. The event log is the
//     single artifact a playback layer needs to animate the walk, and tests
//     can assert it without wall-clock delays.
//
// Determinism
//
//	Neighbors are scanned in ascending vertex id (core.Graph.Neighbors), so
//	two runs on the same (graph, start, end) produce identical event logs.
//
// Early exit
//
//	When end is dequeued a NodeVisited event is recorded and the walk stops:
//	end's outgoing edges are never explored. Vertices discovered before that
//	moment stay in Visited even though they were never dequeued.
//
// Complexity (V = vertices)
//
//   - Time:   O(V²)  (adjacency-matrix scan per dequeued vertex)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Run(g, 0, 2)
//	if err != nil {
//		// ErrGraphNil, ErrInvalidVertex, ErrOptionViolation, ctx error or hook error
//	}
//	for e := range res.Replay() {
//		fmt.Println(e) // visit 0, explore 0->1, visit 1, explore 1->2, visit 2
//	}
//	path, err := res.PathTo(2) // [0 1 2] or ErrNotFound
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per dequeue.
//   - WithOnEvent(fn):   hook per recorded event; returning error aborts.
//   - WithMaxDepth(d):   stop discovering beyond depth d (>0); 0 = no limit.
package bfs
