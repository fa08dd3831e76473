package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bfsviz/playback"
	"github.com/katalvlaran/bfsviz/render/raster"
)

type renderOptions struct {
	out        string
	start, end int
	placement  placementOptions
}

func newRenderCmd(o *rootOptions) *cobra.Command {
	ro := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Write the graph, or the final frame of a run, as a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ro.render(cmd, o, args[0])
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&ro.out, "out", "o", "graph.png", "output PNG file")
	fs.IntVarP(&ro.start, "start", "s", -1, "start vertex; with --end, draws the finished run")
	fs.IntVarP(&ro.end, "end", "e", -1, "end vertex")
	ro.placement.addFlags(fs)

	return cmd
}

func (ro *renderOptions) render(cmd *cobra.Command, o *rootOptions, file string) error {
	sess := o.newSession()
	if err := sess.Load(file); err != nil {
		return err
	}
	if err := ro.placement.place(sess); err != nil {
		return err
	}

	frame := playback.NewFrame(sess.Graph())
	if cmd.Flags().Changed("start") || cmd.Flags().Changed("end") {
		run, err := sess.Start(cmd.Context(), ro.start, ro.end)
		if err != nil {
			return err
		}
		frame = playback.Replay(sess.Graph(), run.Steps, len(run.Steps))
	}

	f, err := os.Create(ro.out)
	if err != nil {
		return err
	}
	if err := raster.Encode(frame, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", ro.out)

	return nil
}
