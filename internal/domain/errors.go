package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so transports can map to status codes without leaking
// infrastructure details.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrBadRequest = errors.New("bad request")
)
