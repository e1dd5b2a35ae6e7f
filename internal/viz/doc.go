// Package viz is the interactive terminal front end for the sorting engine.
//
// [Model] is a Bubble Tea model that renders the working array as a bar
// chart, the narration of the latest step and run counters. Frames arrive
// from the playback controller through [Attach]; frames from superseded
// runs are dropped.
//
// # Key Bindings
//
//	Enter/S  - Start sorting the displayed array
//	Tab/←→   - Switch algorithm (cancels a running sort)
//	R        - Generate a random array
//	I        - Enter a custom array
//	+/-      - Change the delay by 100 ms
//	T        - Cycle color themes
//	?        - Toggle help
//	Q        - Quit
package viz
