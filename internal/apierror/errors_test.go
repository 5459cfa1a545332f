package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Is(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("rotate: %w", NewErrPasswordReuse())

	assert.True(t, errors.Is(err, NewErrPasswordReuse()))
	assert.False(t, errors.Is(err, NewErrInvalidCurrentPassword()))

	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindValidation, apiErr.Kind)
	assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
}

func TestConstructors_StatusAndKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        *APIError
		wantKind   Kind
		wantStatus int
	}{
		{"missing token", NewErrMissingAuthorizationToken(), KindUnauthorized, http.StatusUnauthorized},
		{"invalid token", NewErrInvalidAuthorizationToken(), KindUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewErrForbidden(""), KindForbidden, http.StatusForbidden},
		{"not found", NewErrUserNotFound(), KindNotFound, http.StatusNotFound},
		{"email taken", NewErrEmailIsTaken("a@b.c"), KindValidation, http.StatusConflict},
		{"internal", NewErrInternal(), KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantKind, tt.err.Kind)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}
