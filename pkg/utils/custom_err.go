package utils

import "errors"

// Sentinel errors for the service layer. Services wrap these with
// fmt.Errorf("%w: ...") so HandleServiceError can map them to HTTP codes
// while keeping the human-readable detail.
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrBadRequest    = errors.New("bad request")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrDatabaseError = errors.New("database error")
)
