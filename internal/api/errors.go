package api

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStatus is wrapped by every StatusError
var ErrUnexpectedStatus = errors.New("api: unexpected status")

// StatusError is returned for non-2xx responses
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
