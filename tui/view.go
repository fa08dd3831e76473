package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/bfsviz/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("250"))

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("250")).
			Align(lipgloss.Center)

	hoverStyle = buttonStyle.
			BorderForeground(lipgloss.Color("226")).
			Foreground(lipgloss.Color("226")).
			Bold(true)

	overlayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))
)

// Screen geometry: title on row 0, then the bordered canvas pane and the
// button column side by side, then the status line.
const (
	paneTop   = 1
	paneInset = 1
	buttonGap = 1
)

// cellAt maps a terminal position to a canvas cell.
func (m Model) cellAt(x, y int) (col, row int, ok bool) {
	col = x - paneInset
	row = y - paneTop - paneInset
	ok = col >= 0 && col < m.cfg.Cols && row >= 0 && row < m.cfg.Rows

	return col, row, ok
}

// buttonAt maps a terminal position to a button.
func (m Model) buttonAt(x, y int) (button, bool) {
	left := m.cfg.Cols + 2*paneInset + buttonGap
	if x < left || x >= left+m.cfg.ButtonWidth || y < paneTop {
		return 0, false
	}
	b := button((y - paneTop) / buttonHeight)
	if b >= numButtons {
		return 0, false
	}

	return b, true
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(session.MsgTitle))
	b.WriteString("\n")

	pane := paneStyle.Render(m.canvasView())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, pane, strings.Repeat(" ", buttonGap), m.buttonsView()))
	b.WriteString("\n")

	if m.prompt != promptNone {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(statusStyle.Render(m.status))
	}

	return b.String()
}

func (m Model) canvasView() string {
	if m.overlay != nil || m.frame == nil {
		lines := m.overlay
		if lines == nil {
			lines = []string{session.MsgLoadHint}
		}
		return lipgloss.Place(m.cfg.Cols, m.cfg.Rows, lipgloss.Center, lipgloss.Center,
			overlayStyle.Render(strings.Join(lines, "\n")))
	}

	return m.renderer.Grid(m.frame)
}

func (m Model) buttonsView() string {
	inner := m.cfg.ButtonWidth - 2
	parts := make([]string, numButtons)
	for i := range parts {
		st := buttonStyle
		if i == m.hover {
			st = hoverStyle
		}
		parts[i] = st.Width(inner).Render(buttonLabels[i])
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
