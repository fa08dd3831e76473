package playback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/bfsviz/core"
)

// ErrNoRenderer is returned by Play when Player.Renderer is nil.
var ErrNoRenderer = errors.New("playback: nil renderer")

// Renderer draws a frame. Implementations must not retain f.
type Renderer interface {
	Render(f *Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(f *Frame) error

// Render calls fn(f).
func (fn RendererFunc) Render(f *Frame) error { return fn(f) }

// Sleeper waits d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext waits on the wall clock, returning ctx.Err() if cancelled first.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NoDelay returns immediately; it still reports cancellation.
func NoDelay(ctx context.Context, _ time.Duration) error { return ctx.Err() }

// Player renders steps one at a time.
type Player struct {
	Renderer Renderer
	// Sleep defaults to SleepContext when nil.
	Sleep Sleeper
}

// Play renders the idle frame of g, then applies and renders each step,
// pausing step.Delay after it. It returns the final frame; on cancellation
// or render failure the frame reached so far is returned with the error.
func (p *Player) Play(ctx context.Context, g *core.Graph, steps []Step) (*Frame, error) {
	if p.Renderer == nil {
		return nil, ErrNoRenderer
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = SleepContext
	}

	frame := NewFrame(g)
	if err := p.Renderer.Render(frame); err != nil {
		return frame, fmt.Errorf("playback: render initial frame: %w", err)
	}
	for i, s := range steps {
		if err := ctx.Err(); err != nil {
			return frame, err
		}
		frame.Apply(s)
		if err := p.Renderer.Render(frame); err != nil {
			return frame, fmt.Errorf("playback: render step %d (%s): %w", i, s, err)
		}
		if err := sleep(ctx, s.Delay); err != nil {
			return frame, err
		}
	}

	return frame, nil
}
