// Package playback drives a step log against a working array.
//
// A [Controller] consumes events one at a time in a single cooperative
// loop: apply the event, publish a [Frame] to every [Observer], then wait
// for the configured delay. The context is checked before each event and
// during each wait; cancellation ends the run with [Canceled] and is not
// an error.
//
// # Example
//
//	ctrl := playback.New()
//	_ = ctrl.SetDelay(0)
//	ctrl.AddObserver(playback.ObserverFunc(func(f playback.Frame) {
//		fmt.Println(f.Narration, f.Values)
//	}))
//	res := ctrl.Play(ctx, "run-1", input, sorting.NewBubble().Steps(input))
//
// # Thread Safety
//
// SetDelay may be called from any goroutine while Play runs. Observers,
// metrics and Play itself belong to one run at a time.
package playback
