// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/builder"
	"github.com/katalvlaran/bfsviz/core"
)

func TestTopologies_EdgeCounts(t *testing.T) {
	cases := []struct {
		name  string
		con   builder.Constructor
		n     int
		edges int // directed matrix entries
	}{
		{"path", builder.Path(5), 5, 8},
		{"cycle", builder.Cycle(6), 6, 12},
		{"star", builder.Star(4), 4, 6},
		{"wheel", builder.Wheel(6), 6, 20},
		{"complete", builder.Complete(5), 5, 20},
		{"bipartite", builder.CompleteBipartite(2, 3), 5, 12},
		{"grid", builder.Grid(3, 4), 12, 34},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := builder.Build(tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.n, a.Size())
			assert.Equal(t, tc.edges, a.EdgeCount())
			assert.True(t, a.IsSymmetric())

			g, err := core.NewGraph(a)
			require.NoError(t, err)
			full, err := bfs.Explore(g, 0)
			require.NoError(t, err)
			assert.Len(t, full.Visited, tc.n, "connected")
		})
	}
}

func TestDirected(t *testing.T) {
	a, err := builder.Build(builder.Path(4), builder.WithDirected())
	require.NoError(t, err)
	assert.Equal(t, 3, a.EdgeCount())
	assert.False(t, a.IsSymmetric())
	assert.True(t, a.Has(0, 1))
	assert.False(t, a.Has(1, 0))

	w, err := builder.Build(builder.Wheel(5), builder.WithDirected())
	require.NoError(t, err)
	assert.True(t, w.Has(4, 1), "rim closes")
}

func TestSizeLimits(t *testing.T) {
	_, err := builder.Build(builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Build(builder.Complete(16))
	assert.ErrorIs(t, err, builder.ErrTooManyVertices)
	_, err = builder.Build(builder.Grid(4, 4))
	assert.ErrorIs(t, err, builder.ErrTooManyVertices)
	_, err = builder.Build(builder.Grid(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Build(nil)
	assert.Error(t, err)
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.Build(builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.Build(builder.RandomSparse(5, 1.5), builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	a, err := builder.Build(builder.RandomSparse(10, 0.3), builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.Build(builder.RandomSparse(10, 0.3), builder.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a.Rows(), b.Rows())
	assert.True(t, a.IsSymmetric())

	full, err := builder.Build(builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 12, full.EdgeCount())
	for i := 0; i < 4; i++ {
		assert.False(t, full.Has(i, i))
	}

	d, err := builder.Build(builder.RandomSparse(6, 1), builder.WithDirected())
	require.NoError(t, err)
	assert.Equal(t, 30, d.EdgeCount())
}

func TestByName(t *testing.T) {
	assert.Equal(t, []string{"bipartite", "complete", "cycle", "grid", "path", "random", "star", "wheel"}, builder.Names())

	con, err := builder.ByName("grid", 12, 0)
	require.NoError(t, err)
	a, err := builder.Build(con)
	require.NoError(t, err)
	assert.Equal(t, 12, a.Size())
	assert.Equal(t, 34, a.EdgeCount(), "3x4 grid")

	_, err = builder.ByName("torus", 4, 0)
	assert.ErrorIs(t, err, builder.ErrUnknownTopology)
}
