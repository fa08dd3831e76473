// Package session holds the visualizer's application state: at most one
// loaded graph and at most one finished BFS run. Its methods mirror the
// button column of the interactive front end.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/logging"
	"github.com/katalvlaran/bfsviz/playback"
)

// User-facing messages.
const (
	MsgTitle           = "BFS Visualization for Graphs"
	MsgNoGraphToStart  = "NO GRAPH TO START"
	MsgNoGraphToReset  = "NO GRAPH TO RESET"
	MsgDeleted         = "DATA HAS BEEN DELETED"
	MsgLoadHint        = "CLICK THE 'Load file' BUTTON TO ADD GRAPH"
	MsgPlaceHint       = "CLICK LEFT MOUSE BUTTON TO ADD A NODE"
	MsgInvalidVertices = "INVALID START OR END NODE"
	MsgPlaceAll        = "PLACE EVERY NODE BEFORE STARTING"
)

var (
	// ErrNoGraph indicates an operation that needs a loaded graph.
	ErrNoGraph = errors.New("session: no graph loaded")
	// ErrPlacementIncomplete indicates Start before every vertex was placed.
	ErrPlacementIncomplete = errors.New("session: vertex placement incomplete")
)

// UserError pairs an error with the message shown to the user.
type UserError struct {
	Msg string
	Err error
}

func (e *UserError) Error() string { return e.Msg + ": " + e.Err.Error() }
func (e *UserError) Unwrap() error { return e.Err }

// Message returns the user-facing text for err.
func Message(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Msg
	}
	if err == nil {
		return ""
	}

	return err.Error()
}

// Run is one finished BFS with its compiled playback.
type Run struct {
	ID     string
	Start  int
	End    int
	Result *bfs.Result
	Path   bfs.Path
	Found  bool
	Steps  []playback.Step
}

// Option configures a Session.
type Option func(s *Session)

// WithCanvas sets the canvas graphs are loaded with.
func WithCanvas(c core.Canvas) Option {
	return func(s *Session) { s.canvas = c }
}

// WithTiming sets the step delays compiled into each Run.
func WithTiming(t playback.Timing) Option {
	return func(s *Session) { s.timing = t }
}

// WithLogger sets the logger for actions that take no context.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Session is not safe for concurrent use.
type Session struct {
	canvas core.Canvas
	timing playback.Timing
	log    logrus.FieldLogger

	file  string
	graph *core.Graph
	run   *Run
}

// New returns an empty session.
func New(opts ...Option) *Session {
	s := &Session{
		canvas: core.DefaultCanvas(),
		timing: playback.DefaultTiming(),
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Info returns the about text.
func (s *Session) Info() string {
	return MsgTitle + "\n\n" +
		"Load an adjacency-matrix file, click inside the canvas to place every\n" +
		"node, then Start with a start and end node.\n\n" +
		"Keys: i info, l load, s start, r reset, d delete, q exit"
}

// Graph returns the loaded graph or nil.
func (s *Session) Graph() *core.Graph { return s.graph }

// File returns the path of the loaded graph.
func (s *Session) File() string { return s.file }

// Run returns the last finished run or nil.
func (s *Session) Run() *Run { return s.run }

// Canvas returns the canvas new graphs are created with.
func (s *Session) Canvas() core.Canvas { return s.canvas }

// Load replaces the graph with the one read from path. On failure the
// previously loaded graph, placements and run are kept.
func (s *Session) Load(path string) error {
	log := s.log.WithField("path", path)
	g, err := core.LoadFile(path, core.WithCanvas(s.canvas))
	if err != nil {
		log.WithError(err).Warn("load failed, keeping previous graph")
		return err
	}
	s.file, s.graph, s.run = path, g, nil
	log.WithFields(logrus.Fields{
		"vertices":  g.VertexCount(),
		"symmetric": g.Symmetric(),
	}).Info("graph loaded")

	return nil
}

// Reload loads the current file again.
func (s *Session) Reload() error {
	if s.graph == nil || s.file == "" {
		return ErrNoGraph
	}

	return s.Load(s.file)
}

// NeedsPlacement reports whether a graph is loaded with vertices left to place.
func (s *Session) NeedsPlacement() bool {
	return s.graph != nil && !s.graph.Complete()
}

// Place positions the next vertex; see core.Graph.PlaceVertex.
func (s *Session) Place(x, y float64) bool {
	if s.graph == nil {
		return false
	}
	ok := s.graph.PlaceVertex(x, y)
	s.log.WithFields(logrus.Fields{"x": x, "y": y, "accepted": ok, "placed": s.graph.Placed()}).Debug("place vertex")

	return ok
}

// Start runs BFS from start to end and compiles its playback. Any previous
// run is discarded first.
func (s *Session) Start(ctx context.Context, start, end int) (*Run, error) {
	if s.graph == nil {
		return nil, &UserError{Msg: MsgNoGraphToStart, Err: ErrNoGraph}
	}
	s.run = nil
	if !s.graph.Complete() {
		return nil, &UserError{
			Msg: MsgPlaceAll,
			Err: fmt.Errorf("%w: %d of %d placed", ErrPlacementIncomplete, s.graph.Placed(), s.graph.VertexCount()),
		}
	}

	id := uuid.NewString()
	log := s.logger(ctx).WithFields(logrus.Fields{"run_id": id, "path": s.file, "start": start, "end": end})
	res, err := bfs.Run(s.graph, start, end,
		bfs.WithContext(ctx),
		bfs.WithOnEvent(func(e bfs.Event) error {
			log.WithField("event", e.String()).Trace("bfs event")
			return nil
		}),
	)
	if err != nil {
		if errors.Is(err, bfs.ErrInvalidVertex) {
			log.WithError(err).Info("rejected start/end")
			return nil, &UserError{Msg: MsgInvalidVertices, Err: err}
		}
		return nil, err
	}

	run := &Run{ID: id, Start: start, End: end, Result: res, Found: res.ReachedEnd}
	if run.Found {
		if run.Path, err = res.PathTo(end); err != nil {
			return nil, err
		}
	}
	run.Steps = playback.Compile(res, s.timing)
	s.run = run

	log.WithFields(logrus.Fields{
		"found":   run.Found,
		"hops":    run.Path.Hops(),
		"visited": len(res.Order),
		"steps":   len(run.Steps),
	}).Info("bfs finished")

	return run, nil
}

// logger prefers the context's logger over the session's.
func (s *Session) logger(ctx context.Context) logrus.FieldLogger {
	if l, ok := logging.FromContext(ctx); ok {
		return l
	}

	return s.log
}

// Reset discards the run and every placement; the vertices must be placed again.
func (s *Session) Reset() error {
	if s.graph == nil {
		return &UserError{Msg: MsgNoGraphToReset, Err: ErrNoGraph}
	}
	s.run = nil
	s.graph.ResetPlacement()
	s.log.WithField("path", s.file).Info("session reset")

	return nil
}

// Delete discards the graph and run.
func (s *Session) Delete() {
	s.log.WithField("path", s.file).Info("session deleted")
	s.file, s.graph, s.run = "", nil, nil
}
