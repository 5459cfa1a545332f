package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dtroode/account-service/internal/apierror"
	"github.com/dtroode/account-service/internal/logger"
	"github.com/dtroode/account-service/internal/model"
)

const bearerPrefix = "Bearer "

// Gate resolves the caller of a request from its Authorization header.
type Gate struct {
	tokens model.TokenManager
	users  model.UserStore
	logger *logger.Logger
}

// NewGate creates a new Gate.
func NewGate(tokens model.TokenManager, users model.UserStore, logger *logger.Logger) *Gate {
	return &Gate{tokens: tokens, users: users, logger: logger}
}

// Authenticate verifies the bearer token in authorization and loads its identity.
// Every token failure is reported as the same unauthorized error, the
// specific kind is only logged.
func (g *Gate) Authenticate(ctx context.Context, authorization string) (model.AuthContext, error) {
	token := bearerToken(authorization)
	if token == "" {
		return model.AuthContext{}, apierror.NewErrMissingAuthorizationToken()
	}

	userID, err := g.tokens.Verify(token)
	if err != nil {
		g.logger.Warn("Auth gate: token rejected",
			"kind", tokenErrorKind(err),
			"error", err.Error())
		return model.AuthContext{}, apierror.NewErrInvalidAuthorizationToken()
	}

	identity, err := g.users.FindByID(ctx, userID, model.FindOptions{})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			g.logger.Warn("Auth gate: token subject does not exist",
				"user_id", userID)
			return model.AuthContext{}, apierror.NewErrInvalidAuthorizationToken()
		}
		g.logger.Error("Auth gate: failed to load identity",
			"user_id", userID,
			"error", err.Error())
		return model.AuthContext{}, fmt.Errorf("failed to load identity: %w", err)
	}

	return model.NewAuthContext(identity), nil
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if token, ok := strings.CutPrefix(header, bearerPrefix); ok {
		return strings.TrimSpace(token)
	}
	// A header without the scheme is passed through and fails verification.
	return header
}

func tokenErrorKind(err error) string {
	switch {
	case errors.Is(err, model.ErrTokenExpired):
		return "expired"
	case errors.Is(err, model.ErrTokenSignatureInvalid):
		return "signature_invalid"
	case errors.Is(err, model.ErrTokenMissing):
		return "missing"
	case errors.Is(err, model.ErrTokenMalformed):
		return "malformed"
	default:
		return "unknown"
	}
}
