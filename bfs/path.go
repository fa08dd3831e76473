package bfs

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is an ordered sequence of vertex ids from start to end.
type Path []int

// Hops returns the number of edges on the path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Edges returns consecutive pairs (p[i], p[i+1]) in path order.
func (p Path) Edges() [][2]int {
	if len(p) < 2 {
		return nil
	}
	out := make([][2]int, 0, len(p)-1)
	for i := 0; i+1 < len(p); i++ {
		out = append(out, [2]int{p[i], p[i+1]})
	}

	return out
}

// String renders the ids separated by single spaces, e.g. "0 1 2".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}

// Reconstruct walks parent links back from end to start and returns the
// path ordered start→end.
//
// The start vertex has no entry in parent. When end != start and end has no
// entry either, end was never visited and ErrNotFound is returned. start ==
// end yields the single-element path [start].
//
// A parent map containing a cycle, or a chain that never reaches start,
// also yields ErrNotFound (wrapped with the offending vertex).
func Reconstruct(parent map[int]int, start, end int) (Path, error) {
	if end == start {
		return Path{start}, nil
	}
	if _, ok := parent[end]; !ok {
		return nil, fmt.Errorf("%w: %d is unreachable from %d", ErrNotFound, end, start)
	}

	// build reversed path; a simple path has at most len(parent)+1 vertices
	path := Path{end}
	for cur := end; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			return nil, fmt.Errorf("%w: parent chain from %d stops at %d before reaching %d", ErrNotFound, end, cur, start)
		}
		if len(path) > len(parent) {
			return nil, fmt.Errorf("%w: parent chain from %d contains a cycle", ErrNotFound, end)
		}
		path = append(path, prev)
		cur = prev
	}

	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
