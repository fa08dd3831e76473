// Package layout supplies vertex placements without a mouse: point lists
// read from YAML, and a simple circular arrangement.
package layout

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bfsviz/core"
)

// ErrNoPoints is returned when a points document lists nothing.
var ErrNoPoints = errors.New("layout: no points")

// Point is a candidate vertex centre in canvas coordinates.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type document struct {
	Points []Point `yaml:"points"`
}

// DecodePoints reads a YAML document of the form
//
//	points:
//	  - {x: 100, y: 120}
//	  - {x: 260, y: 80}
//
// Unknown keys are rejected.
func DecodePoints(r io.Reader) ([]Point, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoPoints
		}
		return nil, fmt.Errorf("layout: decode points: %w", err)
	}
	if len(doc.Points) == 0 {
		return nil, ErrNoPoints
	}

	return doc.Points, nil
}

// LoadPoints reads points from the YAML file at path.
func LoadPoints(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout: open points file: %w", err)
	}
	defer f.Close()

	pts, err := DecodePoints(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pts, nil
}

// Circle returns n points evenly spaced on the largest circle that keeps
// every node inside c, starting at the top and going clockwise. Adjacent
// points may still be closer than c.MinSpacing for large n on small canvases.
func Circle(c core.Canvas, n int) []Point {
	if n <= 0 {
		return nil
	}
	cx := c.Left + c.Width()/2
	cy := c.Top + c.Height()/2
	// one unit of slack keeps rounding inside the inset bounds
	r := math.Min(c.Width(), c.Height())/2 - c.Radius - 1
	if n == 1 || r <= 0 {
		return []Point{{X: cx, Y: cy}}
	}

	pts := make([]Point, n)
	for k := range pts {
		theta := -math.Pi/2 + 2*math.Pi*float64(k)/float64(n)
		pts[k] = Point{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)}
	}

	return pts
}

// Place feeds points through g.PlaceVertex in order until the placement is
// complete and reports how many were accepted and rejected. Points left
// over once the graph is complete are not counted.
func Place(g *core.Graph, points []Point) (accepted, rejected int) {
	for _, p := range points {
		if g.Complete() {
			break
		}
		if g.PlaceVertex(p.X, p.Y) {
			accepted++
		} else {
			rejected++
		}
	}

	return accepted, rejected
}
