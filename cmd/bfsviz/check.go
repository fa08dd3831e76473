package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bfsviz/core"
)

func newCheckCmd(o *rootOptions) *cobra.Command {
	var showMatrix bool
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a graph file and print its summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := core.LoadFile(args[0], core.WithCanvas(o.cfg.Canvas.Core()))
			if err != nil {
				return err
			}
			kind := "directed"
			if g.Symmetric() {
				kind = "undirected"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices: %d\n", g.VertexCount())
			fmt.Fprintf(out, "kind: %s\n", kind)
			fmt.Fprintf(out, "edges: %d\n", len(g.Edges()))
			if showMatrix {
				fmt.Fprint(out, g.Adjacency().String())
			}
			o.logger.WithField("path", args[0]).Debug("graph file valid")

			return nil
		},
	}
	cmd.Flags().BoolVarP(&showMatrix, "matrix", "m", false, "print the adjacency matrix")

	return cmd
}
