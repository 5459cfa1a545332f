package model

import "errors"

var (
	// ErrNotFound is returned by stores when a row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned by UserStore.Save on an email uniqueness violation.
	ErrDuplicateEmail = errors.New("email already exists")
)
