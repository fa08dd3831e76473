package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/session"
)

// ErrNotTerminal is returned by Run when stdin is not a terminal.
var ErrNotTerminal = errors.New("tui: stdin is not a terminal")

// IsTerminal reports whether fd is a terminal (including Cygwin ptys).
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Run starts the interactive program and blocks until it exits or ctx is done.
func Run(ctx context.Context, sess *session.Session, cfg config.TUI) error {
	if !IsTerminal(os.Stdin.Fd()) {
		return ErrNotTerminal
	}

	m := NewModel(ctx, sess, cfg)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.closeWatcher()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}

	return nil
}
