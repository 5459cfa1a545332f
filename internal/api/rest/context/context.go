package context

import (
	"context"

	"github.com/dtroode/account-service/internal/model"
)

type authContextKey struct{}

// Manager stores the authenticated principal in a request context.
type Manager struct{}

var _ model.ContextManager = (*Manager)(nil)

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetAuthContext returns a copy of ctx carrying auth. Secret material is dropped.
func (m *Manager) SetAuthContext(ctx context.Context, auth model.AuthContext) context.Context {
	auth.Identity = auth.Identity.Public()
	return context.WithValue(ctx, authContextKey{}, auth)
}

// GetAuthContext returns the principal stored by SetAuthContext.
func (m *Manager) GetAuthContext(ctx context.Context) (model.AuthContext, bool) {
	auth, ok := ctx.Value(authContextKey{}).(model.AuthContext)
	return auth, ok
}
