package playback

import (
	"errors"
	"fmt"
	"time"
)

// ErrNegativeDelay is returned by Timing.Validate.
var ErrNegativeDelay = errors.New("playback: negative delay")

// Timing holds the pause after each kind of step.
type Timing struct {
	Visit    time.Duration
	Explore  time.Duration
	PathEdge time.Duration
	PathNode time.Duration
}

// DefaultTiming returns the classic animation speeds.
func DefaultTiming() Timing {
	return Timing{
		Visit:    500 * time.Millisecond,
		Explore:  400 * time.Millisecond,
		PathEdge: 200 * time.Millisecond,
		PathNode: 100 * time.Millisecond,
	}
}

// Zero returns a Timing with every delay set to 0.
func Zero() Timing { return Timing{} }

// Validate rejects negative delays.
func (t Timing) Validate() error {
	for name, d := range map[string]time.Duration{
		"visit": t.Visit, "explore": t.Explore, "path_edge": t.PathEdge, "path_node": t.PathNode,
	} {
		if d < 0 {
			return fmt.Errorf("%w: %s=%s", ErrNegativeDelay, name, d)
		}
	}

	return nil
}

// Total is the sum of delays over steps.
func Total(steps []Step) time.Duration {
	var sum time.Duration
	for _, s := range steps {
		sum += s.Delay
	}

	return sum
}
