package api

import (
	"errors"
	"fmt"
)

// Upstream failure kinds. Callers branch on these to surface distinct
// messages; anything unclassified is a *StatusError.
var (
	ErrNotFound     = errors.New("resource not found upstream")
	ErrAuthRejected = errors.New("upstream rejected API credentials")
	ErrRateLimited  = errors.New("rate limited by upstream")
)

// StatusError carries the status code and body of an upstream response that
// did not map to a known failure kind.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream error: status %d: %s", e.Code, e.Body)
}

// IsUpstreamNotFound reports whether err is the upstream missing-resource kind.
func IsUpstreamNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
