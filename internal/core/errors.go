package core

import (
	"errors"
	"fmt"
)

// Error taxonomy for remote API interaction. Lower-level request failures are
// converted into one of these at the call site; callers branch on the
// category, they never re-raise up a chain.

// AuthError means login against the session endpoint failed. Fatal: the
// process aborts, no retry is performed.
type AuthError struct {
	Status int
	Detail string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("login error: %d - %s", e.Status, e.Detail)
	}
	if e.Err != nil {
		return fmt.Sprintf("login error: %v", e.Err)
	}
	return "login error: " + e.Detail
}

func (e *AuthError) Unwrap() error { return e.Err }

// NetworkError means a request failed in transit or returned a non-2xx
// status. Transient from the system's point of view: surfaced per call,
// logged, and treated as a negative result rather than retried.
type NetworkError struct {
	Op     string
	Status int
	Detail string
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %d - %s", e.Op, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ResponseFormatError means the remote payload did not have the expected
// shape. Treated as a failure, never a crash.
type ResponseFormatError struct {
	Op     string
	Detail string
	Err    error
}

func (e *ResponseFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: unexpected response: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected response: %s", e.Op, e.Detail)
}

func (e *ResponseFormatError) Unwrap() error { return e.Err }

// ErrNoCredential is returned by credential repositories when no record is
// persisted. A cache miss, not a failure.
var ErrNoCredential = errors.New("no credential record")
