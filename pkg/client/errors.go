package client

import (
	"errors"
	"fmt"
)

// ErrConnectionUnavailable means no usable backend handle existed, either
// because readiness retries were exhausted (submission) or because an admin
// operation was attempted before the connection was established.
var ErrConnectionUnavailable = errors.New("backend connection unavailable")

// RemoteRejectedError is a permanent refusal reported by the backend for a
// submission. It is never retried; the backend's message is carried verbatim.
type RemoteRejectedError struct {
	Message string
}

func (e *RemoteRejectedError) Error() string {
	return fmt.Sprintf("booking rejected by backend: %s", e.Message)
}

// RemoteError wraps a failed confirm/reject/delete mutation. The local view
// of the booking is left untouched when one is returned.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s booking: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }
