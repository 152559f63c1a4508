// Package viz puts the rain on a terminal using the Bubble Tea framework.
//
//   - [Screen]: the sim.Display backed by a [Canvas] and a [Palette]
//   - [Model]: Bubble Tea model scheduling frames and resize settling
//   - [Run]: owns the terminal session; raw mode and the alternate screen
//     are always released when it returns, including on panics
//
// # Key Bindings
//
//	q      - Quit
//	Ctrl+C - Quit
//
// # Colors
//
// Drops are drawn with the 256-color palette. A terminal with fewer colors
// is rejected with rain.ErrCapability before anything is drawn.
package viz
