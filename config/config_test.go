package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/playback"
)

func TestDefault_Validates(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, core.DefaultCanvas(), cfg.Canvas.Core())
	assert.Equal(t, playback.DefaultTiming(), cfg.Timing.Playback())
}

func TestDecode_Overrides(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(`
canvas:
  radius: 15
timing:
  visit: 1s
  path_node: 0s
log:
  level: debug
tui:
  watch: false
`))
	require.NoError(t, err)
	assert.Equal(t, 15.0, cfg.Canvas.Radius)
	assert.Equal(t, 550.0, cfg.Canvas.Right)
	assert.Equal(t, time.Second, cfg.Timing.Visit)
	assert.Equal(t, 400*time.Millisecond, cfg.Timing.Explore)
	assert.Zero(t, cfg.Timing.PathNode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.TUI.Watch)
	assert.Equal(t, 14, cfg.TUI.ButtonWidth)
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestDecode_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":     "canvas:\n  colour: red\n",
		"zero radius":     "canvas:\n  radius: 0\n",
		"inverted canvas": "canvas:\n  left: 600\n",
		"negative delay":  "timing:\n  visit: -1s\n",
		"narrow buttons":  "tui:\n  button_width: 2\n",
		"short pane":      "tui:\n  rows: 3\n",
		"log format":      "log:\n  format: xml\n",
		"not yaml":        "canvas: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}

	_, err := config.Decode(strings.NewReader("timing:\n  explore: -5ms\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, playback.ErrNegativeDelay)

	_, err = config.Decode(strings.NewReader("tui:\n  cols: 4\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "Cols", verrs[0].Field())
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "bfsviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: json\n"), 0o600))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)

	_, err = config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
