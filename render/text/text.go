// Package text draws playback frames onto a character grid.
//
// Canvas coordinates are scaled linearly onto Cols×Rows cells. Edges are
// rasterised with Bresenham's algorithm, directed edges get an arrowhead at
// the target's rim, and vertices are drawn as bracketed labels. Colours come
// from lipgloss and degrade to plain glyphs when the output has no colour.
package text

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/playback"
)

// Default grid size; 540×360 canvas units at 7.5×15 units per cell.
const (
	DefaultCols = 73
	DefaultRows = 25
)

// Glyphs per edge state. Distinct so frames stay readable without colour.
const (
	glyphIdle     = '.'
	glyphExplored = '+'
	glyphPath     = '#'
)

// class selects the style of a cell.
type class uint8

const (
	classBlank class = iota
	classIdle
	classVisited
	classPath
)

type cell struct {
	r rune
	c class
}

// Option configures a Renderer.
type Option func(r *Renderer)

// WithSize overrides the grid dimensions (each at least 2).
func WithSize(cols, rows int) Option {
	return func(r *Renderer) {
		if cols >= 2 {
			r.Cols = cols
		}
		if rows >= 2 {
			r.Rows = rows
		}
	}
}

// WithColor switches lipgloss styling on or off.
func WithColor(on bool) Option {
	return func(r *Renderer) { r.Color = on }
}

// Renderer implements playback.Renderer over an io.Writer.
type Renderer struct {
	Cols, Rows int
	Color      bool

	out    io.Writer
	styles map[class]lipgloss.Style
}

// New returns a Renderer writing to w (may be nil when only Draw is used).
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{Cols: DefaultCols, Rows: DefaultRows, Color: true, out: w}
	for _, opt := range opts {
		opt(r)
	}
	r.styles = map[class]lipgloss.Style{
		classIdle:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		classVisited: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		classPath:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}

	return r
}

// Render writes Draw(f) followed by a blank line.
func (r *Renderer) Render(f *playback.Frame) error {
	if r.out == nil {
		return fmt.Errorf("text: renderer has no output")
	}
	_, err := io.WriteString(r.out, r.Draw(f)+"\n\n")

	return err
}

// ToCell maps canvas coordinates to the nearest grid cell.
func (r *Renderer) ToCell(c core.Canvas, x, y float64) (col, row int) {
	col = int(math.Round((x - c.Left) / c.Width() * float64(r.Cols-1)))
	row = int(math.Round((y - c.Top) / c.Height() * float64(r.Rows-1)))

	return col, row
}

// ToCanvas maps a grid cell to the canvas coordinates of its centre.
func (r *Renderer) ToCanvas(c core.Canvas, col, row int) (x, y float64) {
	x = c.Left + float64(col)/float64(r.Cols-1)*c.Width()
	y = c.Top + float64(row)/float64(r.Rows-1)*c.Height()

	return x, y
}

// Draw renders f as Rows lines of grid followed by the status line.
func (r *Renderer) Draw(f *playback.Frame) string {
	status := ""
	if f != nil {
		status = f.Status
	}

	return r.Grid(f) + "\n" + status
}

// Grid renders f as exactly Rows lines of Cols cells, without the status line.
//
// Implementation:
//   - Stage 1: edges, in core.Graph.Edges order, idle first so explored and
//     path cells overwrite them.
//   - Stage 2: arrowheads for directed graphs.
//   - Stage 3: vertex labels on top.
//   - Stage 4: serialise rows, styling runs of equal class.
func (r *Renderer) Grid(f *playback.Frame) string {
	grid := make([][]cell, r.Rows)
	for i := range grid {
		grid[i] = make([]cell, r.Cols)
		for j := range grid[i] {
			grid[i][j] = cell{r: ' '}
		}
	}
	if f == nil || f.Graph == nil {
		return r.serialise(grid)
	}
	g := f.Graph
	canvas := g.Canvas()
	verts := g.Vertices()
	placed := func(id int) bool { return id < len(verts) }

	// Stage 1 + 2: layered by state
	for _, want := range []playback.EdgeState{playback.EdgeIdle, playback.EdgeExplored, playback.EdgePath} {
		for _, e := range g.Edges() {
			if e.From == e.To || !placed(e.From) || !placed(e.To) || f.Edge(e.From, e.To) != want {
				continue
			}
			glyph, cls := edgeLook(want)
			a, b := verts[e.From], verts[e.To]
			c0, r0 := r.ToCell(canvas, a.X, a.Y)
			c1, r1 := r.ToCell(canvas, b.X, b.Y)
			r.line(grid, c0, r0, c1, r1, cell{r: glyph, c: cls})
			if g.Directed() {
				r.arrow(grid, canvas, a, b, cls)
			}
		}
	}

	// Stage 3
	for _, v := range verts {
		label := "[" + strconv.Itoa(v.Label) + "]"
		col, row := r.ToCell(canvas, v.X, v.Y)
		cls := nodeClass(f.Node(v.Label))
		start := col - len(label)/2
		for k, ch := range label {
			r.put(grid, start+k, row, cell{r: ch, c: cls})
		}
	}

	return r.serialise(grid)
}

func edgeLook(s playback.EdgeState) (rune, class) {
	switch s {
	case playback.EdgeExplored:
		return glyphExplored, classVisited
	case playback.EdgePath:
		return glyphPath, classPath
	default:
		return glyphIdle, classIdle
	}
}

func nodeClass(s playback.NodeState) class {
	switch s {
	case playback.NodeVisited:
		return classVisited
	case playback.NodePath:
		return classPath
	default:
		return classIdle
	}
}

func (r *Renderer) put(grid [][]cell, col, row int, c cell) {
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		return
	}
	grid[row][col] = c
}

// line draws a Bresenham segment between two cells.
func (r *Renderer) line(grid [][]cell, x0, y0, x1, y1 int, c cell) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		r.put(grid, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// arrowSize and arrowAngle follow the raster renderer's arrowhead geometry.
const (
	arrowSize  = 10.0
	arrowAngle = math.Pi / 6
)

// arrow places a head on the rim of b pointing from a: a tip glyph and two
// wings at ±arrowAngle.
func (r *Renderer) arrow(grid [][]cell, canvas core.Canvas, a, b core.Vertex, cls class) {
	theta := math.Atan2(b.Y-a.Y, b.X-a.X)
	tipX := b.X - canvas.Radius*math.Cos(theta)
	tipY := b.Y - canvas.Radius*math.Sin(theta)
	tc, tr := r.ToCell(canvas, tipX, tipY)
	for _, sign := range []float64{-1, 1} {
		wx := tipX - arrowSize*math.Cos(theta+sign*arrowAngle)
		wy := tipY - arrowSize*math.Sin(theta+sign*arrowAngle)
		wc, wr := r.ToCell(canvas, wx, wy)
		r.line(grid, wc, wr, tc, tr, cell{r: '\'', c: cls})
	}
	r.put(grid, tc, tr, cell{r: tipGlyph(theta), c: cls})
}

// tipGlyph picks the arrow character closest to direction theta (y grows down).
func tipGlyph(theta float64) rune {
	switch oct := int(math.Round(theta/(math.Pi/2))) & 3; oct {
	case 0:
		return '>'
	case 1:
		return 'v'
	case 2:
		return '<'
	default:
		return '^'
	}
}

func (r *Renderer) serialise(grid [][]cell) string {
	var b strings.Builder
	for i, row := range grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		cur := classBlank
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if st, ok := r.styles[cur]; ok && r.Color {
				b.WriteString(st.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, c := range row {
			if c.c != cur {
				flush()
				cur = c.c
			}
			run.WriteRune(c.r)
		}
		flush()
	}

	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
