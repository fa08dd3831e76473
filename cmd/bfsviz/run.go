package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bfsviz/playback"
	"github.com/katalvlaran/bfsviz/render/raster"
	"github.com/katalvlaran/bfsviz/render/text"
	"github.com/katalvlaran/bfsviz/session"
)

type runOptions struct {
	start, end int
	noDelay    bool
	pngDir     string
	noColor    bool
	placement  placementOptions
}

func newRunCmd(o *rootOptions) *cobra.Command {
	ro := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Animate BFS from --start to --end in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ro.run(cmd, o, args[0])
		},
	}
	fs := cmd.Flags()
	fs.IntVarP(&ro.start, "start", "s", 0, "start vertex")
	fs.IntVarP(&ro.end, "end", "e", 0, "end vertex")
	fs.BoolVar(&ro.noDelay, "no-delay", false, "play without pauses")
	fs.StringVar(&ro.pngDir, "png-dir", "", "also write every frame as PNG into this directory")
	fs.BoolVar(&ro.noColor, "no-color", false, "disable colours")
	ro.placement.addFlags(fs)

	return cmd
}

func (ro *runOptions) run(cmd *cobra.Command, o *rootOptions, file string) error {
	ctx := cmd.Context()
	var opts []session.Option
	if ro.noDelay {
		opts = append(opts, session.WithTiming(playback.Zero()))
	}
	sess := o.newSession(opts...)
	if err := sess.Load(file); err != nil {
		return err
	}
	if err := ro.placement.place(sess); err != nil {
		return err
	}
	run, err := sess.Start(ctx, ro.start, ro.end)
	if err != nil {
		return err
	}

	renderers := []playback.Renderer{
		text.New(cmd.OutOrStdout(), text.WithColor(!ro.noColor && colorOutput(cmd.OutOrStdout()))),
	}
	if ro.pngDir != "" {
		pr, err := raster.New(ro.pngDir)
		if err != nil {
			return err
		}
		renderers = append(renderers, pr)
	}

	sleep := playback.SleepContext
	if ro.noDelay {
		sleep = playback.NoDelay
	}
	player := playback.Player{Renderer: fanOut(renderers), Sleep: sleep}
	if _, err := player.Play(ctx, sess.Graph(), run.Steps); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "order: %v\n", run.Result.Order)
	if run.Found {
		fmt.Fprintf(cmd.OutOrStdout(), "hops: %d\n", run.Path.Hops())
	}

	return nil
}

// fanOut renders each frame with every renderer in turn.
func fanOut(rs []playback.Renderer) playback.Renderer {
	if len(rs) == 1 {
		return rs[0]
	}

	return playback.RendererFunc(func(f *playback.Frame) error {
		var errs []error
		for _, r := range rs {
			errs = append(errs, r.Render(f))
		}
		return errors.Join(errs...)
	})
}
