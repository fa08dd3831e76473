package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/layout"
	"github.com/katalvlaran/bfsviz/playback"
	"github.com/katalvlaran/bfsviz/session"
)

const lineGraph = "3\n0 1 0\n1 0 1\n0 1 0\n"

func writeGraph(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func testConfig() config.TUI {
	cfg := config.Default().TUI
	cfg.Watch = false

	return cfg
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	sess := session.New(session.WithLogger(logger), session.WithTiming(playback.Zero()))

	return NewModel(context.Background(), sess, testConfig())
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to m and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)

	return nm, cmd
}

// typeLine types value into the open prompt and presses enter.
func typeLine(t *testing.T, m Model, value string) (Model, tea.Cmd) {
	t.Helper()
	for _, r := range value {
		m, _ = send(t, m, keys(string(r)))
	}

	return send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func loadAndPlace(t *testing.T, m Model, content string) Model {
	t.Helper()
	m, _ = send(t, m, keys("l"))
	require.Equal(t, promptFile, m.prompt)
	m, _ = typeLine(t, m, writeGraph(t, content))
	require.NotNil(t, m.frame)
	require.Equal(t, session.MsgPlaceHint, m.status)

	layout.Place(m.sess.Graph(), layout.Circle(m.sess.Canvas(), m.sess.Graph().VertexCount()))
	require.False(t, m.sess.NeedsPlacement())

	return m
}

// drain plays every scheduled step synchronously, ignoring tick delays.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for m.Playing() {
		require.NotNil(t, cmd)
		msg := stepMsg{runID: m.run.ID, index: m.next}
		m, cmd = send(t, m, msg)
	}

	return m
}

func TestNewModel_Empty(t *testing.T) {
	m := newTestModel(t)
	assert.Nil(t, m.frame)
	assert.Equal(t, []string{session.MsgLoadHint}, m.overlay)
	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), session.MsgLoadHint)
	assert.Contains(t, m.View(), "Load file")
}

func TestModel_StartWithoutGraph(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, keys("s"))
	assert.Equal(t, promptNone, m.prompt)
	assert.Contains(t, m.overlay, session.MsgNoGraphToStart)

	m, _ = send(t, m, keys("r"))
	assert.Contains(t, m.overlay, session.MsgNoGraphToReset)
}

func TestModel_LoadFailureKeepsStatus(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, keys("l"))
	m, _ = typeLine(t, m, filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, strings.HasPrefix(m.status, "LOAD FAILED"))
	assert.Nil(t, m.sess.Graph())
}

func TestModel_FullRun(t *testing.T) {
	m := loadAndPlace(t, newTestModel(t), lineGraph)

	m, _ = send(t, m, keys("s"))
	require.Equal(t, promptStart, m.prompt)
	m, _ = typeLine(t, m, "0")
	require.Equal(t, promptEnd, m.prompt)
	m, cmd := typeLine(t, m, "2")
	require.NotNil(t, m.run)
	assert.True(t, m.Playing())

	m = drain(t, m, cmd)
	assert.Equal(t, "PATH: 0 1 2", m.status)
	assert.Equal(t, playback.NodePath, m.frame.Node(1))
	assert.Contains(t, m.View(), "PATH: 0 1 2")
}

func TestModel_StaleStepsIgnored(t *testing.T) {
	m := loadAndPlace(t, newTestModel(t), lineGraph)
	m, _ = send(t, m, keys("s"))
	m, _ = typeLine(t, m, "0")
	m, _ = typeLine(t, m, "2")
	old := m.run.ID

	m, _ = send(t, m, stepMsg{runID: old, index: 0})
	require.Equal(t, 1, m.next)
	// duplicate index
	m, _ = send(t, m, stepMsg{runID: old, index: 0})
	assert.Equal(t, 1, m.next)
	// reset aborts playback; late ticks do nothing
	m, _ = send(t, m, keys("r"))
	assert.False(t, m.Playing())
	m, cmd := send(t, m, stepMsg{runID: old, index: 1})
	assert.Nil(t, cmd)
	assert.Equal(t, session.MsgPlaceHint, m.status)
}

func TestModel_InvalidVertices(t *testing.T) {
	m := loadAndPlace(t, newTestModel(t), lineGraph)
	m, _ = send(t, m, keys("s"))
	m, _ = typeLine(t, m, "0")
	m, _ = typeLine(t, m, "7")
	assert.Equal(t, session.MsgInvalidVertices, m.status)
	assert.Nil(t, m.run)

	m, _ = send(t, m, keys("s"))
	m, _ = typeLine(t, m, "x")
	assert.Equal(t, session.MsgInvalidVertices, m.status)
	assert.Equal(t, promptNone, m.prompt)
}

func TestModel_MousePlacement(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, keys("l"))
	m, _ = typeLine(t, m, writeGraph(t, "2\n0 1\n1 0\n"))

	// far corner cells of the pane are inside the placement area
	press := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}
	m, _ = send(t, m, press(paneInset+10, paneTop+paneInset+5))
	assert.Equal(t, 1, m.sess.Graph().Placed())
	// same spot again is too close
	m, _ = send(t, m, press(paneInset+10, paneTop+paneInset+5))
	assert.Equal(t, 1, m.sess.Graph().Placed())
	// outside the pane
	m, _ = send(t, m, press(0, 0))
	assert.Equal(t, 1, m.sess.Graph().Placed())

	m, _ = send(t, m, press(paneInset+60, paneTop+paneInset+20))
	assert.Equal(t, 2, m.sess.Graph().Placed())
	assert.Equal(t, msgPlaced, m.status)
	assert.Contains(t, m.View(), "[1]")
}

func TestModel_Buttons(t *testing.T) {
	m := newTestModel(t)
	left := m.cfg.Cols + 2*paneInset + buttonGap

	b, ok := m.buttonAt(left, paneTop)
	require.True(t, ok)
	assert.Equal(t, buttonInfo, b)
	b, ok = m.buttonAt(left+1, paneTop+buttonHeight*int(buttonExit)+1)
	require.True(t, ok)
	assert.Equal(t, buttonExit, b)
	_, ok = m.buttonAt(left, paneTop+buttonHeight*int(numButtons))
	assert.False(t, ok)
	_, ok = m.buttonAt(left-1, paneTop)
	assert.False(t, ok)

	// hover highlights, press triggers
	m, _ = send(t, m, tea.MouseMsg{X: left + 2, Y: paneTop + 1, Action: tea.MouseActionMotion})
	assert.Equal(t, int(buttonInfo), m.hover)
	m, _ = send(t, m, tea.MouseMsg{X: left + 2, Y: paneTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Contains(t, m.overlay, session.MsgTitle)

	m, cmd := send(t, m, tea.MouseMsg{X: left + 2, Y: paneTop + buttonHeight*int(buttonExit) + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_DeleteAndEscape(t *testing.T) {
	m := loadAndPlace(t, newTestModel(t), lineGraph)
	m, _ = send(t, m, keys("i"))
	require.NotNil(t, m.overlay)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.overlay)

	m, _ = send(t, m, keys("d"))
	assert.Nil(t, m.sess.Graph())
	assert.Nil(t, m.frame)
	assert.Contains(t, m.overlay, session.MsgDeleted)

	// escape without a graph keeps the message
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, m.overlay)
}

func TestModel_PromptEscape(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, keys("l"))
	m, _ = send(t, m, keys("a"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, promptNone, m.prompt)
	assert.Empty(t, m.input.Value())
	assert.Nil(t, m.sess.Graph())
}

func TestModel_FileReload(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	sess := session.New(session.WithLogger(logger), session.WithTiming(playback.Zero()))
	path := writeGraph(t, lineGraph)
	require.NoError(t, sess.Load(path))

	cfg := testConfig()
	cfg.Watch = true
	m := NewModel(context.Background(), sess, cfg)
	require.NotNil(t, m.watcher)
	defer m.closeWatcher()
	cmd := m.Init()
	require.NotNil(t, cmd)

	require.NoError(t, os.WriteFile(path, []byte("2\n0 1\n0 0\n"), 0o600))
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		require.IsType(t, fileChangedMsg{}, msg)
		m, _ = send(t, m, msg)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
	assert.Equal(t, msgReloaded, m.status)
	assert.Equal(t, 2, m.sess.Graph().VertexCount())
	assert.True(t, m.sess.Graph().Directed())

	// messages from a replaced watcher are ignored
	m2, cmd2 := send(t, m, fileChangedMsg{watcher: &Watcher{}})
	assert.Nil(t, cmd2)
	assert.Equal(t, m.status, m2.status)
}
