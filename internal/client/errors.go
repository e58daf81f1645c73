package client

import (
	"errors"
	"fmt"
)

// Kind classifies an API call failure.
type Kind int

const (
	// KindNetwork means the request could not complete (DNS, connect, timeout).
	KindNetwork Kind = iota
	// KindUnauthorized is a 401; the stored session has been cleared.
	KindUnauthorized
	// KindValidation is a 4xx with a server-provided detail message, shown verbatim.
	KindValidation
	// KindNotFound is a 404 when fetching by a stale or deleted id.
	KindNotFound
	// KindServer is a 5xx.
	KindServer
)

// APIError is the single error type the client surfaces. None of these
// propagate as faults; callers render the message inline and keep prior
// in-memory state.
type APIError struct {
	Kind   Kind
	Status int
	Detail string
	Err    error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("request failed: %v", e.Err)
	case KindUnauthorized:
		return "unauthorized: session expired, please log in again"
	case KindNotFound:
		return "not found"
	case KindValidation:
		if e.Detail != "" {
			return e.Detail
		}
		return fmt.Sprintf("request rejected (status %d)", e.Status)
	default:
		return fmt.Sprintf("server error (status %d)", e.Status)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

func kindOf(err error) (Kind, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// IsUnauthorized reports whether err is a 401 failure.
func IsUnauthorized(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindUnauthorized
}

// IsNotFound reports whether err is a 404 failure.
func IsNotFound(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNotFound
}

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNetwork
}

// IsValidation reports whether err is a rejected-input failure.
func IsValidation(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindValidation
}
