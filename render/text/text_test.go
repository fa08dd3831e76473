package text_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/matrix"
	"github.com/katalvlaran/bfsviz/playback"
	"github.com/katalvlaran/bfsviz/render/text"
)

func placedGraph(t *testing.T, rows [][]int, pts ...[2]float64) *core.Graph {
	t.Helper()
	adj, err := matrix.FromRows(rows)
	require.NoError(t, err)
	g, err := core.NewGraph(adj)
	require.NoError(t, err)
	for _, p := range pts {
		require.True(t, g.PlaceVertex(p[0], p[1]), "place %v", p)
	}

	return g
}

func TestDraw_Undirected(t *testing.T) {
	g := placedGraph(t, [][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	}, [2]float64{40, 190}, [2]float64{280, 190}, [2]float64{520, 190})
	r := text.New(nil, text.WithColor(false))

	idle := r.Draw(playback.NewFrame(g))
	lines := strings.Split(idle, "\n")
	require.Len(t, lines, text.DefaultRows+1)
	assert.Contains(t, idle, "[0]")
	assert.Contains(t, idle, "[1]")
	assert.Contains(t, idle, "[2]")
	assert.Contains(t, idle, "....")
	assert.NotContains(t, idle, ">")
	assert.Empty(t, lines[len(lines)-1])

	res, err := bfs.Run(g, 0, 2)
	require.NoError(t, err)
	steps := playback.Compile(res, playback.Zero())
	final := r.Draw(playback.Replay(g, steps, len(steps)))
	assert.Contains(t, final, "####")
	assert.NotContains(t, final, "....")
	assert.True(t, strings.HasSuffix(final, "PATH: 0 1 2"))
}

func TestDraw_DirectedArrow(t *testing.T) {
	g := placedGraph(t, [][]int{
		{0, 1},
		{0, 0},
	}, [2]float64{40, 190}, [2]float64{520, 190})
	r := text.New(nil, text.WithColor(false))

	out := r.Draw(playback.NewFrame(g))
	assert.Contains(t, out, ">")
	assert.NotContains(t, out, "<")
}

func TestDraw_PartialPlacement(t *testing.T) {
	g := placedGraph(t, [][]int{
		{0, 1},
		{1, 0},
	}, [2]float64{40, 190})
	out := text.New(nil, text.WithColor(false)).Draw(playback.NewFrame(g))
	assert.Contains(t, out, "[0]")
	assert.NotContains(t, out, "[1]")
	assert.NotContains(t, out, ".")
}

func TestRender_Writer(t *testing.T) {
	g := placedGraph(t, [][]int{{0, 1}, {1, 0}}, [2]float64{40, 40}, [2]float64{300, 300})
	var buf bytes.Buffer
	r := text.New(&buf, text.WithColor(false), text.WithSize(30, 10))
	f := playback.NewFrame(g)
	f.Apply(playback.Step{Op: playback.OpNoPath})
	require.NoError(t, r.Render(f))
	assert.Contains(t, buf.String(), "NO PATH FOUND")
	assert.Len(t, strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"), 11)

	assert.Error(t, text.New(nil).Render(f))
}

func TestCellMapping(t *testing.T) {
	c := core.DefaultCanvas()
	r := text.New(nil)
	col, row := r.ToCell(c, c.Left, c.Top)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
	col, row = r.ToCell(c, c.Right, c.Bottom)
	assert.Equal(t, text.DefaultCols-1, col)
	assert.Equal(t, text.DefaultRows-1, row)

	x, y := r.ToCanvas(c, col, row)
	assert.InDelta(t, c.Right, x, 1e-9)
	assert.InDelta(t, c.Bottom, y, 1e-9)
}

func TestGrid_ExactSize(t *testing.T) {
	r := text.New(nil, text.WithColor(false), text.WithSize(20, 6))
	lines := strings.Split(r.Grid(nil), "\n")
	require.Len(t, lines, 6)
	for _, l := range lines {
		assert.Len(t, l, 20)
	}
}
