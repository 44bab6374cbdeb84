package models

import "errors"

// Sentinel errors shared by the service layer. Handlers translate these into
// HTTP status codes; the message shown to clients is decided at the handler.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUpstream     = errors.New("upstream failure")
)
