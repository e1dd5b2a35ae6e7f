// Package sorting implements the step generators for the comparison sorts
// the visualizer animates.
//
// Every [Algorithm] turns an input sequence into a lazy, deterministic
// sequence of [step.Event] values. Generators sort a private scratch copy
// so that each narration reflects the values at that moment; the caller's
// slice is never touched. The last event is always exactly one
// [step.KindComplete] carrying the sorted sequence.
//
//   - [Bubble]: n(n-1)/2 comparisons, no early exit
//   - [Insertion]: shifts modeled as adjacent swaps
//   - [Selection]: n(n-1)/2 comparisons, at most n-1 swaps
//   - [Quick]: Lomuto partition, last element as pivot
//
// All generators use strict comparisons, so equal elements never swap and
// sorted or constant input yields no Swap events.
package sorting
