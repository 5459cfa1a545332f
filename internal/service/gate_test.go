package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/account-service/internal/apierror"
	"github.com/dtroode/account-service/internal/mocks"
	"github.com/dtroode/account-service/internal/model"
	"github.com/dtroode/account-service/internal/testutil"
)

func TestGate_Authenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	identity := model.Identity{
		ID:     userID,
		Email:  "a@b.c",
		Secret: &model.Secret{PasswordHash: "leak"},
	}

	tests := []struct {
		name       string
		header     string
		verifyID   uuid.UUID
		verifyErr  error
		findResult model.Identity
		findErr    error
		callVerify bool
		callFind   bool
		wantErr    error
		wantAPI    bool
	}{
		{
			name:    "missing header",
			header:  "",
			wantErr: apierror.NewErrMissingAuthorizationToken(),
			wantAPI: true,
		},
		{
			name:    "bearer without token",
			header:  "Bearer ",
			wantErr: apierror.NewErrMissingAuthorizationToken(),
			wantAPI: true,
		},
		{
			name:       "expired token",
			header:     "Bearer expired",
			verifyErr:  model.ErrTokenExpired,
			callVerify: true,
			wantErr:    apierror.NewErrInvalidAuthorizationToken(),
			wantAPI:    true,
		},
		{
			name:       "bad signature",
			header:     "Bearer forged",
			verifyErr:  model.ErrTokenSignatureInvalid,
			callVerify: true,
			wantErr:    apierror.NewErrInvalidAuthorizationToken(),
			wantAPI:    true,
		},
		{
			name:       "header without scheme",
			header:     "garbage",
			verifyErr:  model.ErrTokenMalformed,
			callVerify: true,
			wantErr:    apierror.NewErrInvalidAuthorizationToken(),
			wantAPI:    true,
		},
		{
			name:       "subject deleted",
			header:     "Bearer good",
			verifyID:   userID,
			findErr:    model.ErrNotFound,
			callVerify: true,
			callFind:   true,
			wantErr:    apierror.NewErrInvalidAuthorizationToken(),
			wantAPI:    true,
		},
		{
			name:       "store failure",
			header:     "Bearer good",
			verifyID:   userID,
			findErr:    assert.AnError,
			callVerify: true,
			callFind:   true,
			wantErr:    assert.AnError,
		},
		{
			name:       "valid token",
			header:     "Bearer good",
			verifyID:   userID,
			findResult: identity,
			callVerify: true,
			callFind:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := mocks.NewTokenManager(t)
			users := mocks.NewUserStore(t)

			if tt.callVerify {
				tokens.On("Verify", mock.AnythingOfType("string")).Return(tt.verifyID, tt.verifyErr)
			}
			if tt.callFind {
				users.On("FindByID", mock.Anything, tt.verifyID, model.FindOptions{}).Return(tt.findResult, tt.findErr)
			}

			gate := NewGate(tokens, users, testutil.MakeNoopLogger())
			actx, err := gate.Authenticate(context.Background(), tt.header)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				var apiErr *apierror.APIError
				assert.Equal(t, tt.wantAPI, errors.As(err, &apiErr))
				if tt.wantAPI {
					assert.Equal(t, apierror.KindUnauthorized, apiErr.Kind)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, actx.ID())
			assert.Nil(t, actx.Identity.Secret)
		})
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("  Bearer abc  "))
	assert.Equal(t, "", bearerToken("Bearer    "))
	assert.Equal(t, "abc", bearerToken("abc"))
}

func TestTokenErrorKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "expired", tokenErrorKind(model.ErrTokenExpired))
	assert.Equal(t, "signature_invalid", tokenErrorKind(model.ErrTokenSignatureInvalid))
	assert.Equal(t, "malformed", tokenErrorKind(model.ErrTokenMalformed))
	assert.Equal(t, "missing", tokenErrorKind(model.ErrTokenMissing))
	assert.Equal(t, "unknown", tokenErrorKind(assert.AnError))
}
