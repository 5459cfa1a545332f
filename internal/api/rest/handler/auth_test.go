package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/account-service/internal/api/rest/handler/mocks"
	"github.com/dtroode/account-service/internal/apierror"
	"github.com/dtroode/account-service/internal/model"
	"github.com/dtroode/account-service/internal/service"
	"github.com/dtroode/account-service/internal/testutil"
)

func newAuthEngine(svc AuthService) *gin.Engine {
	h := NewAuth(svc, testutil.MakeNoopLogger())

	e := gin.New()
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	return e
}

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		svc.On("Register", mock.Anything, service.RegisterRequest{Email: "a@b.co", Password: "Passw0rd", Name: "Ann"}).
			Return(service.Session{User: model.Identity{ID: uuid.New(), Email: "a@b.co"}, Token: "tok"}, nil)

		rec, env := doRequest(t, newAuthEngine(svc), http.MethodPost, "/auth/register", `{"email":"a@b.co","password":"Passw0rd","name":"Ann"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, env.Success)
		assert.Contains(t, rec.Body.String(), `"token":"tok"`)
	})

	t.Run("email taken", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		svc.On("Register", mock.Anything, mock.Anything).Return(service.Session{}, apierror.NewErrEmailIsTaken("a@b.co"))

		rec, env := doRequest(t, newAuthEngine(svc), http.MethodPost, "/auth/register", `{"email":"a@b.co","password":"Passw0rd"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("weak password", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		svc.On("Register", mock.Anything, mock.Anything).Return(service.Session{}, apierror.NewErrWeakPassword("too short"))

		rec, env := doRequest(t, newAuthEngine(svc), http.MethodPost, "/auth/register", `{"email":"a@b.co","password":"x"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "too short", env.Message)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		rec, env := doRequest(t, newAuthEngine(svc), http.MethodPost, "/auth/register", `{"email":"nope","password":"Passw0rd"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email: must be a valid email address", env.Message)
	})

	t.Run("name too short after trimming", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		rec, env := doRequest(t, newAuthEngine(svc), http.MethodPost, "/auth/register", `{"email":"a@b.co","password":"Passw0rd","name":"  a  "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "name: must be between 2 and 50 characters", env.Message)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		rec, env := doRequest(t, newAuthEngine(svc), http.MethodPost, "/auth/register", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "request body is required", env.Message)
	})
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		svc.On("Login", mock.Anything, "a@b.co", "Passw0rd").Return(service.Session{User: model.Identity{ID: uuid.New()}, Token: "tok"}, nil)

		rec, env := doRequest(t, newAuthEngine(svc), http.MethodPost, "/auth/login", `{"email":"a@b.co","password":"Passw0rd"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		svc.On("Login", mock.Anything, "a@b.co", "wrong").Return(service.Session{}, apierror.NewErrInvalidLogin())

		rec, env := doRequest(t, newAuthEngine(svc), http.MethodPost, "/auth/login", `{"email":"a@b.co","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid email or password", env.Message)
	})
}

func TestBindJSON_BodyTooLarge(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	h := NewAuth(svc, testutil.MakeNoopLogger())

	e := gin.New()
	e.POST("/auth/login", func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 64)
		c.Next()
	}, h.Login)

	body := `{"email":"a@b.co","password":"` + strings.Repeat("x", 128) + `"}`
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
