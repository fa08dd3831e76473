// Package playback turns a finished bfs.Result into a timed sequence of
// drawing steps and plays them against a Renderer.
//
// What
//
//   - Compile(res, timing) produces the Step list: one step per recorded
//     event in order, then (when the target was reached) every path edge
//     start→end, every path node end→start and a final OpShowPath listing;
//     otherwise a single trailing OpNoPath.
//   - Frame is the cumulative picture after applying steps: node and edge
//     states plus the status line. Renderers only ever see Frames.
//   - Player walks the steps, renders after each one and waits Step.Delay
//     through a pluggable Sleeper, so tests and headless runs use NoDelay.
//
// Timing
//
//	DefaultTiming: visit 500ms, explore 400ms, path edge 200ms, path node 100ms.
//
// Cancellation
//
//	Player.Play checks the context before every step and inside the sleep;
//	a cancelled context stops playback and returns ctx.Err().
//
// Usage
//
//	res, _ := bfs.Run(g, 0, 2)
//	steps := playback.Compile(res, playback.DefaultTiming())
//	p := playback.Player{Renderer: r, Sleep: playback.SleepContext}
//	frame, err := p.Play(ctx, g, steps)
package playback
