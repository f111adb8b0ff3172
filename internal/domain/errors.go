package domain

import "errors"

// Sentinel errors for the kinds of failures the API distinguishes.
// Services wrap them with fmt.Errorf("%w: ...") so the transport layer
// can map them to status codes with errors.Is.
var (
	ErrBadInput = errors.New("bad input")
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)
