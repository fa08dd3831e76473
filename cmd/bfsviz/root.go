package main

import (
	"context"
	"fmt"
	"io"
	"os"

	isatty "github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/layout"
	"github.com/katalvlaran/bfsviz/logging"
	"github.com/katalvlaran/bfsviz/session"
)

// rootOptions holds persistent flags and what PersistentPreRunE derives from them.
type rootOptions struct {
	configPath string
	verbose    bool
	logFile    string

	out    io.Writer
	errOut io.Writer

	cfg      config.Config
	logger   *logrus.Logger
	closeLog func() error
}

func newRootCmd(ctx context.Context, out, errOut io.Writer) *cobra.Command {
	o := &rootOptions{out: out, errOut: errOut, closeLog: func() error { return nil }}

	root := &cobra.Command{
		Use:           "bfsviz",
		Short:         "Visualise breadth-first search on small adjacency-matrix graphs",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return o.closeLog()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetContext(ctx)

	pf := root.PersistentFlags()
	pf.StringVarP(&o.configPath, "config", "c", "", "path to YAML config file (default: $XDG_CONFIG_HOME/"+config.SearchPath+")")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&o.logFile, "log-file", "", "write logs to this file ('-' discards)")

	root.AddCommand(
		newRunCmd(o),
		newCheckCmd(o),
		newRenderCmd(o),
		newTUICmd(o),
		newGenCmd(o),
	)

	return root
}

// execute runs root and reports a failure on errOut the way cobra would.
func execute(root *cobra.Command, errOut io.Writer) error {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(errOut, "Error:", err)
	}

	return err
}

// setup loads config, applies flag overrides and installs the logger.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	if o.configPath == "" {
		if path, ok := config.Locate(); ok {
			o.configPath = path
		}
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	// the TUI owns the terminal
	if cmd.Name() == tuiCmdName && cfg.Log.File == "" {
		cfg.Log.File = "-"
	}
	cfg.Log.Output = o.errOut

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	o.cfg, o.logger, o.closeLog = cfg, logger, closer

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, logger))

	return nil
}

// newSession builds a session from the loaded config.
func (o *rootOptions) newSession(opts ...session.Option) *session.Session {
	base := []session.Option{
		session.WithCanvas(o.cfg.Canvas.Core()),
		session.WithTiming(o.cfg.Timing.Playback()),
		session.WithLogger(o.logger),
	}

	return session.New(append(base, opts...)...)
}

// placementOptions selects where vertices go in non-interactive commands.
type placementOptions struct {
	points string
}

func (p *placementOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&p.points, "points", "", "YAML file of vertex positions (default: circle layout)")
}

// place positions every vertex of the session's graph.
func (p *placementOptions) place(sess *session.Session) error {
	g := sess.Graph()
	pts := layout.Circle(g.Canvas(), g.VertexCount())
	if p.points != "" {
		var err error
		if pts, err = layout.LoadPoints(p.points); err != nil {
			return err
		}
	}
	acc, rej := layout.Place(g, pts)
	if !g.Complete() {
		return fmt.Errorf("%w: %d of %d vertices placed (%d points rejected)",
			session.ErrPlacementIncomplete, acc, g.VertexCount(), rej)
	}

	return nil
}

// colorOutput reports whether w is a terminal.
func colorOutput(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
