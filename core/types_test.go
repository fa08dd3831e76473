package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/matrix"
)

// mustGraph builds a Graph from 0/1 rows or fails the test.
func mustGraph(t *testing.T, rows [][]int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	adj, err := matrix.FromRows(rows)
	require.NoError(t, err)
	g, err := core.NewGraph(adj, opts...)
	require.NoError(t, err)

	return g
}

func TestNewGraph_Validation(t *testing.T) {
	_, err := core.NewGraph(nil)
	assert.ErrorIs(t, err, core.ErrNilAdjacency)

	one, err := matrix.NewAdjacency(1)
	require.NoError(t, err)
	_, err = core.NewGraph(one)
	assert.ErrorIs(t, err, core.ErrInvalidVertexCount)

	big, err := matrix.NewAdjacency(16)
	require.NoError(t, err)
	_, err = core.NewGraph(big)
	assert.ErrorIs(t, err, core.ErrInvalidVertexCount)

	two, err := matrix.NewAdjacency(2)
	require.NoError(t, err)
	_, err = core.NewGraph(two, core.WithCanvas(core.Canvas{Right: 100, Bottom: 100, Radius: 0}))
	assert.ErrorIs(t, err, core.ErrBadCanvas)
	_, err = core.NewGraph(two, core.WithCanvas(core.Canvas{Right: 30, Bottom: 100, Radius: 20}))
	assert.ErrorIs(t, err, core.ErrBadCanvas)
}

func TestNewGraph_CopiesMatrix(t *testing.T) {
	adj, err := matrix.FromRows([][]int{{0, 1}, {1, 0}})
	require.NoError(t, err)
	g, err := core.NewGraph(adj)
	require.NoError(t, err)

	require.NoError(t, adj.Set(0, 1, false))
	assert.True(t, g.HasEdge(0, 1), "graph must not alias the caller's matrix")

	out := g.Adjacency()
	require.NoError(t, out.Set(1, 0, false))
	assert.True(t, g.HasEdge(1, 0), "Adjacency() must return a copy")
}

func TestSymmetry(t *testing.T) {
	sym := mustGraph(t, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
	assert.True(t, sym.Symmetric())
	assert.False(t, sym.Directed())

	asym := mustGraph(t, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 0, 0}})
	assert.False(t, asym.Symmetric())
	assert.True(t, asym.Directed())
}

func TestNeighborsAndEdges(t *testing.T) {
	g := mustGraph(t, [][]int{
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{1, 0, 1, 1},
		{0, 1, 1, 0},
	})
	assert.True(t, g.Symmetric())
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
	assert.Equal(t, []int{0, 2, 3}, g.Neighbors(2))
	assert.Nil(t, g.Neighbors(4))
	assert.Nil(t, g.Neighbors(-1))
	// Symmetric: upper triangle only, self-loop on 2 not drawn.
	assert.Equal(t, []core.Edge{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, g.Edges())

	d := mustGraph(t, [][]int{{1, 1}, {0, 0}})
	assert.Equal(t, []core.Edge{{0, 0}, {0, 1}}, d.Edges())
}

func TestCanvas(t *testing.T) {
	c := core.DefaultCanvas()
	require.NoError(t, c.Validate())
	assert.Equal(t, 60.0, c.MinSpacing())
	assert.Equal(t, 540.0, c.Width())
	assert.Equal(t, 360.0, c.Height())

	assert.True(t, c.Contains(30, 30))
	assert.True(t, c.Contains(530, 350))
	assert.False(t, c.Contains(29, 100))
	assert.False(t, c.Contains(100, 351))
	assert.Error(t, core.Canvas{Right: 10, Bottom: 10, Radius: math.Inf(1)}.Validate())
}
