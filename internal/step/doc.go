// Package step defines the vocabulary of atomic operations emitted by the
// sorting generators and consumed by the playback controller.
//
// An [Event] is one of:
//
//   - Compare(i, j): two positions are compared; no mutation
//   - Swap(i, j): positions i and j are exchanged
//   - Overwrite(i, v): position i is set to v
//   - Pivot(i, v): informational, the partition pivot
//   - Range(low, high): informational, the active partition bounds
//   - Mark(i): narration-only marker that opens a pass
//   - Complete: terminal marker, exactly once per run
//
// Generators describe mutations; only the controller applies them with
// [Event.Apply].
//
// # Example
//
//	arr := []int{5, 3}
//	step.Swap(0, 1, "Swapping 5 and 3").Apply(arr) // arr == [3 5]
package step
