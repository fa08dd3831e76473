// Command bfsviz loads an adjacency-matrix graph and animates a
// breadth-first search over it, in the terminal or as PNG frames.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var version = "dev"

func main() {
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)

	// trap Ctrl+C and call cancel on the context
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := execute(newRootCmd(ctx, os.Stdout, os.Stderr), os.Stderr); err != nil {
		cancel()
		os.Exit(1)
	}
}
