package playback_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/playback"
)

func ExampleCompile() {
	g, _ := core.Load(strings.NewReader("3\n0 1 0\n1 0 1\n0 1 0\n"))
	res, _ := bfs.Run(g, 0, 2)
	for _, s := range playback.Compile(res, playback.DefaultTiming()) {
		fmt.Println(s, s.Delay)
	}
	// Output:
	// visit 0 500ms
	// explore 0->1 400ms
	// visit 1 500ms
	// explore 1->2 400ms
	// visit 2 500ms
	// path-edge 0->1 200ms
	// path-edge 1->2 200ms
	// path-node 2 100ms
	// path-node 1 100ms
	// path-node 0 100ms
	// show-path 0 1 2 0s
}
