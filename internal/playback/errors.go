package playback

import "errors"

// ErrDelayBounds indicates a delay outside [MinDelay, MaxDelay].
var ErrDelayBounds = errors.New("playback: delay must be between 0 and 2000 ms")
