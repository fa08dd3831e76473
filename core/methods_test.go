package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfsviz/core"
)

func TestPlaceVertex_LabelsInOrder(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})

	require.True(t, g.PlaceVertex(100, 100))
	require.True(t, g.PlaceVertex(200, 100))
	require.True(t, g.PlaceVertex(300, 100))
	assert.True(t, g.Complete())

	vs := g.Vertices()
	require.Len(t, vs, 3)
	for i, v := range vs {
		assert.Equal(t, i, v.Label)
	}
	v, ok := g.Vertex(1)
	require.True(t, ok)
	assert.Equal(t, core.Vertex{X: 200, Y: 100, Label: 1}, v)

	// Full graph: any further point is rejected.
	assert.False(t, g.PlaceVertex(400, 300))
	assert.Equal(t, 3, g.Placed())
}

func TestPlaceVertex_Rejections(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	r := g.Canvas().Radius

	require.True(t, g.PlaceVertex(200, 200))

	cases := []struct {
		name string
		x, y float64
	}{
		{"TwoRadiiAway", 200 + 2*r, 200},
		{"JustUnderThreeRadii", 200, 200 + 3*r - 0.001},
		{"LeftOfFrame", 10 + r - 1, 100},
		{"BelowFrame", 300, 370 - r + 1},
		{"OutsideWindow", 600, 100},
		{"NaN", math.NaN(), 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := g.Vertices()
			assert.False(t, g.PlaceVertex(tc.x, tc.y))
			assert.Equal(t, before, g.Vertices(), "rejection must not change state")
		})
	}

	// Exactly 3 radii is allowed.
	assert.True(t, g.PlaceVertex(200+3*r, 200))
}

func TestResetPlacement(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 1}, {1, 0}})
	require.True(t, g.PlaceVertex(100, 100))
	require.True(t, g.PlaceVertex(300, 100))
	g.ResetPlacement()
	assert.Equal(t, 0, g.Placed())
	assert.False(t, g.Complete())
	_, ok := g.Vertex(0)
	assert.False(t, ok)

	require.True(t, g.PlaceVertex(300, 100))
	v, _ := g.Vertex(0)
	assert.Equal(t, 0, v.Label, "labels restart after reset")
}

func TestVertices_ReturnsCopy(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 1}, {1, 0}})
	require.True(t, g.PlaceVertex(100, 100))
	vs := g.Vertices()
	vs[0].X = 999
	v, _ := g.Vertex(0)
	assert.Equal(t, 100.0, v.X)
}
