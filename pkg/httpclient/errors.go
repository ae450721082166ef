package httpclient

import (
	"errors"
	"fmt"
)

// Kind classifies a request failure so callers can tell transport problems
// apart from HTTP-level refusals.
type Kind string

const (
	// KindNetwork covers timeouts, connection refusals and DNS failures.
	KindNetwork Kind = "network"
	// KindStatus covers responses with a non-2xx status code.
	KindStatus Kind = "status"
)

// Error is the failure type returned by Client for any unsuccessful request.
type Error struct {
	Kind       Kind
	URL        string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("%s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err is a transport-level request failure.
func IsNetworkError(err error) bool {
	var reqErr *Error
	return errors.As(err, &reqErr) && reqErr.Kind == KindNetwork
}

// IsStatusError reports whether err is a non-2xx HTTP response.
func IsStatusError(err error) bool {
	var reqErr *Error
	return errors.As(err, &reqErr) && reqErr.Kind == KindStatus
}
