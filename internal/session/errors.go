package session

import "errors"

// ErrNoActivePoll signals a poll command arrived while the session is idle.
// Callers treat it as a benign race and drop the command silently.
var ErrNoActivePoll = errors.New("no active poll")

// ValidationError reports a malformed create-poll request. It is surfaced to
// the originating caller only and never mutates state.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
