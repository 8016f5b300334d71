// Package viz provides terminal-based visualization for launcher runs.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: preset menu plus a parameter-tuning screen that re-simulates
//     on every change
//   - [ReplayModel]: animated playback of a finished trajectory
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - [TrajectoryCanvas], [HeightProfile], [SpeedProfile]: static plots
//     for non-interactive output
//
// # Key Bindings
//
// Tuning screen:
//
//	j/k   - Select parameter
//	h/l   - Nudge the selected parameter along its range
//	Enter - Type an exact value
//	i     - Cycle integrators
//	v     - Replay the current run
//
// Replay:
//
//	Space - Pause/Resume playback
//	R     - Restart from release
//	[/]   - Scrub backward/forward
//	+/-   - Playback speed
package viz
