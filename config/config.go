// Package config loads the visualizer's YAML configuration on top of
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/logging"
	"github.com/katalvlaran/bfsviz/playback"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// SearchPath is the file looked up under the XDG config directories when no
// explicit path is given.
const SearchPath = "bfsviz/config.yaml"

// validate checks the struct tags of the value-only sections.
var validate = validator.New()

// Canvas mirrors core.Canvas in YAML.
type Canvas struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Radius float64 `yaml:"radius"`
}

// Core converts to the graph model's canvas.
func (c Canvas) Core() core.Canvas {
	return core.Canvas{Left: c.Left, Top: c.Top, Right: c.Right, Bottom: c.Bottom, Radius: c.Radius}
}

// Timing holds the step delays, written as Go durations ("500ms").
type Timing struct {
	Visit    time.Duration `yaml:"visit"`
	Explore  time.Duration `yaml:"explore"`
	PathEdge time.Duration `yaml:"path_edge"`
	PathNode time.Duration `yaml:"path_node"`
}

// Playback converts to playback.Timing.
func (t Timing) Playback() playback.Timing {
	return playback.Timing{Visit: t.Visit, Explore: t.Explore, PathEdge: t.PathEdge, PathNode: t.PathNode}
}

// TUI configures the interactive front end.
type TUI struct {
	// Watch reloads the loaded file when it changes on disk.
	Watch bool `yaml:"watch"`
	// ButtonWidth is the width in cells of the button column.
	ButtonWidth int `yaml:"button_width" validate:"gte=6"`
	// Cols and Rows size the canvas pane.
	Cols int `yaml:"cols" validate:"gte=10"`
	Rows int `yaml:"rows" validate:"gte=5"`
}

// Config is the full configuration document.
type Config struct {
	Canvas Canvas          `yaml:"canvas"`
	Timing Timing          `yaml:"timing"`
	Log    logging.Options `yaml:"log"`
	TUI    TUI             `yaml:"tui"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	c := core.DefaultCanvas()
	t := playback.DefaultTiming()

	return Config{
		Canvas: Canvas{Left: c.Left, Top: c.Top, Right: c.Right, Bottom: c.Bottom, Radius: c.Radius},
		Timing: Timing{Visit: t.Visit, Explore: t.Explore, PathEdge: t.PathEdge, PathNode: t.PathNode},
		Log:    logging.Options{Level: "info", Format: logging.FormatText},
		TUI:    TUI{Watch: true, ButtonWidth: 14, Cols: 73, Rows: 25},
	}
}

// Locate returns the first SearchPath found in the XDG config directories.
func Locate() (string, bool) {
	path, err := xdg.SearchConfigFile(SearchPath)
	if err != nil {
		return "", false
	}

	return path, true
}

// Load reads path over Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Default(), fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode parses a YAML document strictly over Default and validates it.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: yaml: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks geometry, delays and TUI sizes.
func (c Config) Validate() error {
	if err := c.Canvas.Core().Validate(); err != nil {
		return fmt.Errorf("%w: canvas: %w", ErrInvalid, err)
	}
	if err := c.Timing.Playback().Validate(); err != nil {
		return fmt.Errorf("%w: timing: %w", ErrInvalid, err)
	}
	if err := validate.Struct(c.TUI); err != nil {
		return fmt.Errorf("%w: tui: %w", ErrInvalid, err)
	}
	switch c.Log.Format {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}
