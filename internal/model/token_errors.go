package model

import "errors"

// Token verification failure kinds. Callers collapse them to a single
// unauthorized response but keep them apart in logs.
var (
	ErrTokenMissing          = errors.New("token missing")
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
)
