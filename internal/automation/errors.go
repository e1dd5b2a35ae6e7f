package automation

import "errors"

var (
	ErrUnknownAction = errors.New("automation: unknown action")
	ErrNoRun         = errors.New("automation: no run started")
)
