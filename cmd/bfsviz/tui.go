package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bfsviz/tui"
)

const tuiCmdName = "tui"

func newTUICmd(o *rootOptions) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   tuiCmdName + " [FILE]",
		Short: "Start the interactive visualizer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := o.cfg.TUI
			if cmd.Flags().Changed("watch") {
				cfg.Watch = watch
			}
			sess := o.newSession()
			if len(args) == 1 {
				if err := sess.Load(args[0]); err != nil {
					return err
				}
			}

			return tui.Run(cmd.Context(), sess, cfg)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", true, "reload the graph file when it changes")

	return cmd
}
