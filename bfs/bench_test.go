package bfs_test

import (
	"testing"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/core"
)

// BenchmarkRun_Chain measures a full walk along the longest allowed chain.
func BenchmarkRun_Chain(b *testing.B) {
	n := core.MaxVertices
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
	}
	for i := 0; i+1 < n; i++ {
		rows[i][i+1], rows[i+1][i] = 1, 1
	}
	g := buildGraph(b, rows)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Run(g, 0, n-1)
	}
}

// BenchmarkRun_Complete measures BFS on the complete graph K15.
func BenchmarkRun_Complete(b *testing.B) {
	n := core.MaxVertices
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = 1
			}
		}
	}
	g := buildGraph(b, rows)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Explore(g, 0)
	}
}
