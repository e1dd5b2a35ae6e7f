// Package runner coordinates sorting runs: it resolves the selected
// algorithm, hands its step log to the shared playback controller and
// reports how each run ended.
//
// At most one run is active. Starting a run, or selecting a different
// algorithm, cancels the run in flight and waits for it to stop before
// anything else happens, so frames from two runs never interleave.
package runner
