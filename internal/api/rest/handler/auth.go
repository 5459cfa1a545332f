package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/account-service/internal/api/rest/response"
	"github.com/dtroode/account-service/internal/logger"
	"github.com/dtroode/account-service/internal/service"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, req service.RegisterRequest) (service.Session, error)
	Login(ctx context.Context, email, password string) (service.Session, error)
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"omitempty,displayname"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionView struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}

// Auth handles /auth endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{authService: authService, logger: logger}
}

// Register handles POST /auth/register.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := bindJSON(c, &req); err != nil {
		handleError(c, h.logger, err)
		return
	}

	session, err := h.authService.Register(c.Request.Context(), service.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusCreated, "user registered successfully", sessionView{
		User:  newUserView(session.User),
		Token: session.Token,
	})
}

// Login handles POST /auth/login.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		handleError(c, h.logger, err)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusOK, "logged in successfully", sessionView{
		User:  newUserView(session.User),
		Token: session.Token,
	})
}
