// Package raster draws playback frames as PNG images with fogleman/gg.
//
// One image covers the full canvas at one pixel per canvas unit plus a
// status strip. Directed edges end in filled arrowheads of size 10 at ±π/6
// on the target's rim.
package raster

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/playback"
)

// ErrNilFrame is returned when asked to draw a frame without a graph.
var ErrNilFrame = errors.New("raster: nil frame or graph")

const (
	arrowSize   = 10.0
	arrowAngle  = math.Pi / 6
	statusStrip = 30
	fontSize    = 14.0
)

var (
	colorBackground = color.White
	colorIdle       = color.Black
	colorVisited    = color.RGBA{R: 0xd0, A: 0xff}
	colorPath       = color.RGBA{R: 0xe6, G: 0xb8, A: 0xff}
)

// Renderer writes one numbered PNG per rendered frame into Dir.
type Renderer struct {
	Dir    string
	Prefix string

	face  font.Face
	count int
}

// New creates dir if needed and returns a Renderer writing frame_0000.png, ...
func New(dir string) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("raster: create %s: %w", dir, err)
	}
	face, err := loadFace()
	if err != nil {
		return nil, err
	}

	return &Renderer{Dir: dir, Prefix: "frame_", face: face}, nil
}

func loadFace() (font.Face, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}

	return truetype.NewFace(ttf, &truetype.Options{Size: fontSize, DPI: 72, Hinting: font.HintingFull}), nil
}

// Count returns the number of frames written so far.
func (r *Renderer) Count() int { return r.count }

// Render writes f to the next numbered file.
func (r *Renderer) Render(f *playback.Frame) error {
	dc, err := draw(f, r.face)
	if err != nil {
		return err
	}
	name := filepath.Join(r.Dir, r.Prefix+fmt.Sprintf("%04d", r.count)+".png")
	if err := dc.SavePNG(name); err != nil {
		return fmt.Errorf("raster: save %s: %w", name, err)
	}
	r.count++

	return nil
}

// Encode draws f and writes a single PNG to w.
func Encode(f *playback.Frame, w io.Writer) error {
	face, err := loadFace()
	if err != nil {
		return err
	}
	dc, err := draw(f, face)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

// draw paints edges, then vertices, then the status line.
func draw(f *playback.Frame, face font.Face) (*gg.Context, error) {
	if f == nil || f.Graph == nil {
		return nil, ErrNilFrame
	}
	g := f.Graph
	c := g.Canvas()
	w := int(math.Ceil(c.Right + c.Left))
	h := int(math.Ceil(c.Bottom+c.Top)) + statusStrip

	dc := gg.NewContext(w, h)
	dc.SetColor(colorBackground)
	dc.Clear()
	dc.SetFontFace(face)

	// frame
	dc.SetColor(colorIdle)
	dc.SetLineWidth(1)
	dc.DrawRectangle(c.Left, c.Top, c.Width(), c.Height())
	dc.Stroke()

	verts := g.Vertices()
	for _, e := range g.Edges() {
		if e.From == e.To || e.From >= len(verts) || e.To >= len(verts) {
			continue
		}
		st := f.Edge(e.From, e.To)
		dc.SetColor(edgeColor(st))
		dc.SetLineWidth(edgeWidth(st))
		a, b := verts[e.From], verts[e.To]
		if g.Directed() {
			drawArrow(dc, c, a, b)
			continue
		}
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		dc.Stroke()
	}

	for _, v := range verts {
		st := f.Node(v.Label)
		dc.DrawCircle(v.X, v.Y, c.Radius)
		dc.SetColor(colorBackground)
		dc.FillPreserve()
		dc.SetColor(nodeColor(st))
		dc.SetLineWidth(2)
		dc.Stroke()
		dc.DrawStringAnchored(strconv.Itoa(v.Label), v.X, v.Y, 0.5, 0.5)
	}

	if f.Status != "" {
		dc.SetColor(colorIdle)
		dc.DrawStringAnchored(f.Status, c.Left, c.Bottom+statusStrip/2, 0, 0.5)
	}

	return dc, nil
}

// drawArrow strokes rim-to-rim from a to b and fills the head at b's rim.
func drawArrow(dc *gg.Context, c core.Canvas, a, b core.Vertex) {
	theta := math.Atan2(b.Y-a.Y, b.X-a.X)
	sx := a.X + c.Radius*math.Cos(theta)
	sy := a.Y + c.Radius*math.Sin(theta)
	tx := b.X - c.Radius*math.Cos(theta)
	ty := b.Y - c.Radius*math.Sin(theta)
	dc.DrawLine(sx, sy, tx, ty)
	dc.Stroke()

	dc.MoveTo(tx, ty)
	dc.LineTo(tx-arrowSize*math.Cos(theta-arrowAngle), ty-arrowSize*math.Sin(theta-arrowAngle))
	dc.LineTo(tx-arrowSize*math.Cos(theta+arrowAngle), ty-arrowSize*math.Sin(theta+arrowAngle))
	dc.ClosePath()
	dc.Fill()
}

func edgeColor(s playback.EdgeState) color.Color {
	switch s {
	case playback.EdgeExplored:
		return colorVisited
	case playback.EdgePath:
		return colorPath
	default:
		return colorIdle
	}
}

func edgeWidth(s playback.EdgeState) float64 {
	if s == playback.EdgeIdle {
		return 1
	}

	return 3
}

func nodeColor(s playback.NodeState) color.Color {
	switch s {
	case playback.NodeVisited:
		return colorVisited
	case playback.NodePath:
		return colorPath
	default:
		return colorIdle
	}
}
