package model

import (
	"context"
	"errors"
)

// ErrHashingFailure is returned when a password hash cannot be computed.
var ErrHashingFailure = errors.New("password hashing failed")

// PasswordHasher hashes and verifies passwords off the caller's goroutine.
// Both methods return ctx.Err() if the context ends first.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, hash string) (bool, error)
	NeedsRehash(hash string) bool
}
