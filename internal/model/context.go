package model

import (
	"context"

	"github.com/google/uuid"
)

// AuthContext is the authenticated principal of a request.
type AuthContext struct {
	Identity Identity
}

// NewAuthContext builds an AuthContext, dropping any secret material.
func NewAuthContext(identity Identity) AuthContext {
	return AuthContext{Identity: identity.Public()}
}

// ID returns the actor identity id.
func (a AuthContext) ID() uuid.UUID {
	return a.Identity.ID
}

// IsAdmin reports whether the actor holds the admin role.
func (a AuthContext) IsAdmin() bool {
	return a.Identity.IsAdmin
}

type ContextManager interface {
	SetAuthContext(ctx context.Context, auth AuthContext) context.Context
	GetAuthContext(ctx context.Context) (AuthContext, bool)
}
