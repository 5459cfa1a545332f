package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/account-service/internal/api/rest/response"
	"github.com/dtroode/account-service/internal/apierror"
	"github.com/dtroode/account-service/internal/logger"
	"github.com/dtroode/account-service/internal/model"
)

// Authenticator resolves the principal of a request from its Authorization header.
type Authenticator interface {
	Authenticate(ctx context.Context, authorization string) (model.AuthContext, error)
}

// Authenticate validates bearer tokens and injects the principal into the request context.
type Authenticate struct {
	gate           Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(gate Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{gate: gate, contextManager: contextManager, logger: logger}
}

// Handle aborts with 401 when the request carries no valid token.
func (m *Authenticate) Handle(c *gin.Context) {
	actor, err := m.gate.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		var apiErr *apierror.APIError
		if errors.As(err, &apiErr) {
			m.logger.Warn("request rejected by auth gate",
				"path", c.Request.URL.Path,
				"code", apiErr.Code)
			response.Abort(c, apiErr.HTTPStatus, apiErr.Message)
			return
		}
		m.logger.Error("auth gate failed",
			"path", c.Request.URL.Path,
			"error", err.Error())
		response.Abort(c, http.StatusInternalServerError, apierror.NewErrInternal().Message)
		return
	}

	c.Request = c.Request.WithContext(m.contextManager.SetAuthContext(c.Request.Context(), actor))
	c.Next()
}
