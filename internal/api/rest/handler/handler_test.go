package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	restctx "github.com/dtroode/account-service/internal/api/rest/context"
	"github.com/dtroode/account-service/internal/api/rest/response"
	"github.com/dtroode/account-service/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withActor stores actor in the request context the way the auth middleware does.
func withActor(m *restctx.Manager, actor *model.AuthContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor != nil {
			c.Request = c.Request.WithContext(m.SetAuthContext(c.Request.Context(), *actor))
		}
		c.Next()
	}
}

func doRequest(t *testing.T, e *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env response.Envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestHealth(t *testing.T) {
	t.Parallel()

	e := gin.New()
	e.GET("/", Health)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Auth API is running"}`, rec.Body.String())
}

func TestNewUserView_HasNoSecrets(t *testing.T) {
	t.Parallel()

	u := model.Identity{
		ID:     uuid.New(),
		Email:  "a@b.c",
		Secret: &model.Secret{PasswordHash: "$argon2id$secret", TwoFactorSecret: "totp", BackupCodes: []string{"code"}},
	}
	raw, err := json.Marshal(newUserView(u))
	require.NoError(t, err)

	body := string(raw)
	for _, leak := range []string{"argon2id", "totp", "code", "password", "secret"} {
		assert.NotContains(t, strings.ToLower(body), leak)
	}
	assert.Contains(t, body, `"skills":[]`)
}
