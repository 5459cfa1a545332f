package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/account-service/internal/api/rest/response"
	"github.com/dtroode/account-service/internal/apierror"
	"github.com/dtroode/account-service/internal/logger"
	"github.com/dtroode/account-service/internal/model"
)

// handleError writes err as an envelope. Only API errors reach the caller
// verbatim, anything else is logged and reported as an internal error.
func handleError(c *gin.Context, logger *logger.Logger, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		response.Fail(c, apiErr.HTTPStatus, apiErr.Message)
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		response.Fail(c, http.StatusNotFound, apierror.NewErrUserNotFound().Message)
		return
	}

	logger.Error("request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err.Error())
	response.Fail(c, http.StatusInternalServerError, apierror.NewErrInternal().Message)
}
