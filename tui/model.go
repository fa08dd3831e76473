// Package tui provides the interactive terminal visualizer.
//
// # Description
//
// A bubbletea program showing the canvas pane, a button column (Info, Load
// file, Start, Reset, Delete, Exit) and a status line. Vertices are placed
// by clicking inside the canvas; the walk is animated with one tea.Tick per
// playback step, so the UI stays responsive during playback.
//
// # Thread Safety
//
// The model and its session are owned by the bubbletea event loop.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/logging"
	"github.com/katalvlaran/bfsviz/playback"
	"github.com/katalvlaran/bfsviz/render/text"
	"github.com/katalvlaran/bfsviz/session"
)

// =============================================================================
// Buttons
// =============================================================================

type button int

const (
	buttonInfo button = iota
	buttonLoad
	buttonStart
	buttonReset
	buttonDelete
	buttonExit
	numButtons
)

var buttonLabels = [numButtons]string{"Info", "Load file", "Start", "Reset", "Delete", "Exit"}

// buttonHeight is the bordered height of one button.
const buttonHeight = 3

// =============================================================================
// Messages
// =============================================================================

// stepMsg asks the model to apply step index of run runID.
type stepMsg struct {
	runID string
	index int
}

// fileChangedMsg reports a debounced change from watcher.
type fileChangedMsg struct {
	watcher *Watcher
}

// watchErrMsg reports a watcher failure.
type watchErrMsg struct {
	watcher *Watcher
	err     error
}

// =============================================================================
// Model
// =============================================================================

type promptKind int

const (
	promptNone promptKind = iota
	promptFile
	promptStart
	promptEnd
)

// Status texts specific to the interactive front end.
const (
	msgPlaced   = "ALL NODES PLACED - PRESS s TO START"
	msgReloaded = "FILE CHANGED - GRAPH RELOADED"
)

// Model is the bubbletea model of the visualizer.
type Model struct {
	ctx      context.Context
	sess     *session.Session
	cfg      config.TUI
	renderer *text.Renderer
	log      logrus.FieldLogger

	// Playback
	frame *playback.Frame
	run   *session.Run
	next  int

	// Screen state
	overlay []string
	status  string
	prompt  promptKind
	input   textinput.Model
	start   int
	hover   int

	watcher  *Watcher
	quitting bool
}

// NewModel creates the model for sess. If sess already holds a graph it is
// shown immediately and, when cfg.Watch is set, its file is watched.
func NewModel(ctx context.Context, sess *session.Session, cfg config.TUI) Model {
	ti := textinput.New()
	ti.CharLimit = 4096
	ti.Width = cfg.Cols

	m := Model{
		ctx:      ctx,
		sess:     sess,
		cfg:      cfg,
		renderer: text.New(nil, text.WithSize(cfg.Cols, cfg.Rows)),
		log:      logging.Logger(ctx),
		input:    ti,
		hover:    -1,
	}
	if g := sess.Graph(); g != nil {
		m.frame = playback.NewFrame(g)
		m.status = session.MsgPlaceHint
		if !sess.NeedsPlacement() {
			m.status = msgPlaced
		}
		m.rewatch()
	} else {
		m.overlay = []string{session.MsgLoadHint}
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.listen()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case stepMsg:
		return m.handleStep(msg)

	case fileChangedMsg:
		if msg.watcher != m.watcher {
			return m, nil
		}
		return m.handleFileChanged()

	case watchErrMsg:
		if msg.watcher != m.watcher {
			return m, nil
		}
		m.log.WithError(msg.err).Warn("file watch error")
		return m, m.listen()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "i", "I":
		return m.press(buttonInfo)
	case "l", "L":
		return m.press(buttonLoad)
	case "s", "S":
		return m.press(buttonStart)
	case "r", "R":
		return m.press(buttonReset)
	case "d", "D":
		return m.press(buttonDelete)
	case "q", "Q", "ctrl+c":
		return m.press(buttonExit)
	case "esc":
		if m.frame != nil {
			m.overlay = nil
		}
	}

	return m, nil
}

// press runs the action of button b.
func (m Model) press(b button) (tea.Model, tea.Cmd) {
	switch b {
	case buttonInfo:
		m.stopPlayback()
		m.overlay = strings.Split(m.sess.Info(), "\n")

	case buttonLoad:
		m.stopPlayback()
		return m.openPrompt(promptFile, "file path: ", m.sess.File())

	case buttonStart:
		m.stopPlayback()
		switch {
		case m.sess.Graph() == nil:
			m.overlay = []string{session.MsgNoGraphToStart, "", session.MsgLoadHint}
		case m.sess.NeedsPlacement():
			m.status = session.MsgPlaceAll
		default:
			return m.openPrompt(promptStart, "start node: ", "")
		}

	case buttonReset:
		m.stopPlayback()
		if err := m.sess.Reset(); err != nil {
			m.frame = nil
			m.overlay = []string{session.Message(err), "", session.MsgLoadHint}
			return m, nil
		}
		m.showGraph(session.MsgPlaceHint)

	case buttonDelete:
		m.stopPlayback()
		m.sess.Delete()
		m.closeWatcher()
		m.frame = nil
		m.status = ""
		m.overlay = []string{session.MsgDeleted, "", session.MsgLoadHint}

	case buttonExit:
		m.stopPlayback()
		m.closeWatcher()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) openPrompt(kind promptKind, label, value string) (tea.Model, tea.Cmd) {
	m.prompt = kind
	m.input.Prompt = label
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmd := m.input.Focus()

	return m, cmd
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.closePrompt()
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		kind := m.prompt
		m.closePrompt()
		return m.submit(kind, value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.input.Blur()
	m.input.SetValue("")
}

// submit handles an entered prompt value.
func (m Model) submit(kind promptKind, value string) (tea.Model, tea.Cmd) {
	switch kind {
	case promptFile:
		if value == "" {
			return m, nil
		}
		if err := m.sess.Load(value); err != nil {
			m.status = "LOAD FAILED: " + err.Error()
			return m, nil
		}
		m.showGraph(session.MsgPlaceHint)
		m.rewatch()
		return m, m.listen()

	case promptStart:
		id, err := strconv.Atoi(value)
		if err != nil {
			m.status = session.MsgInvalidVertices
			return m, nil
		}
		m.start = id
		return m.openPrompt(promptEnd, fmt.Sprintf("start %d, end node: ", id), "")

	case promptEnd:
		id, err := strconv.Atoi(value)
		if err != nil {
			m.status = session.MsgInvalidVertices
			return m, nil
		}
		return m.startRun(m.start, id)
	}

	return m, nil
}

// startRun executes BFS and schedules the first playback step.
func (m Model) startRun(start, end int) (tea.Model, tea.Cmd) {
	run, err := m.sess.Start(m.ctx, start, end)
	if err != nil {
		if errors.Is(err, session.ErrNoGraph) {
			m.frame = nil
			m.overlay = []string{session.Message(err), "", session.MsgLoadHint}
			return m, nil
		}
		m.status = session.Message(err)
		return m, nil
	}
	m.showGraph("")
	m.run = run
	m.next = 0

	return m, m.schedule(0)
}

// schedule returns the command that delivers step i after the delay of step i-1.
func (m Model) schedule(i int) tea.Cmd {
	if m.run == nil || i >= len(m.run.Steps) {
		return nil
	}
	msg := stepMsg{runID: m.run.ID, index: i}
	if i == 0 || m.run.Steps[i-1].Delay <= 0 {
		return func() tea.Msg { return msg }
	}

	return tea.Tick(m.run.Steps[i-1].Delay, func(_ time.Time) tea.Msg { return msg })
}

func (m Model) handleStep(msg stepMsg) (tea.Model, tea.Cmd) {
	if m.run == nil || m.frame == nil || msg.runID != m.run.ID || msg.index != m.next {
		return m, nil
	}
	m.frame.Apply(m.run.Steps[msg.index])
	m.next++
	if m.frame.Status != "" {
		m.status = m.frame.Status
	}

	return m, m.schedule(m.next)
}

// Playing reports whether a run still has steps to show.
func (m Model) Playing() bool {
	return m.run != nil && m.next < len(m.run.Steps)
}

func (m *Model) stopPlayback() {
	m.run = nil
	m.next = 0
}

// showGraph resets the frame to the session's graph.
func (m *Model) showGraph(status string) {
	m.overlay = nil
	m.frame = nil
	if g := m.sess.Graph(); g != nil {
		m.frame = playback.NewFrame(g)
	}
	m.status = status
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.hover = -1
	if b, ok := m.buttonAt(msg.X, msg.Y); ok {
		m.hover = int(b)
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.prompt == promptNone {
			return m.press(b)
		}
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || m.prompt != promptNone {
		return m, nil
	}
	col, row, ok := m.cellAt(msg.X, msg.Y)
	if !ok || !m.sess.NeedsPlacement() || m.overlay != nil {
		return m, nil
	}
	x, y := m.renderer.ToCanvas(m.sess.Canvas(), col, row)
	if m.sess.Place(x, y) && !m.sess.NeedsPlacement() {
		m.status = msgPlaced
	}

	return m, nil
}

func (m Model) handleFileChanged() (tea.Model, tea.Cmd) {
	if err := m.sess.Reload(); err != nil {
		m.status = "RELOAD FAILED: " + err.Error()
		return m, m.listen()
	}
	m.stopPlayback()
	m.showGraph(msgReloaded)

	return m, m.listen()
}

// =============================================================================
// File watch
// =============================================================================

// rewatch replaces the watcher with one on the session's current file.
func (m *Model) rewatch() {
	m.closeWatcher()
	if !m.cfg.Watch || m.sess.File() == "" {
		return
	}
	w, err := Watch(m.sess.File())
	if err != nil {
		m.log.WithError(err).Warn("cannot watch graph file")
		return
	}
	m.watcher = w
}

func (m *Model) closeWatcher() {
	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
	}
}

// listen waits for the next change or error from the current watcher.
func (m Model) listen() tea.Cmd {
	w := m.watcher
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return nil
			}
			return fileChangedMsg{watcher: w}
		case err := <-w.Errors():
			return watchErrMsg{watcher: w, err: err}
		}
	}
}
