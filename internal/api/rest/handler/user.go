package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/account-service/internal/api/rest/response"
	"github.com/dtroode/account-service/internal/apierror"
	"github.com/dtroode/account-service/internal/logger"
	"github.com/dtroode/account-service/internal/model"
	"github.com/dtroode/account-service/internal/service"
)

// UserService defines profile and credential operations.
type UserService interface {
	List(ctx context.Context, page, limit int) ([]model.Identity, service.Pagination, error)
	Get(ctx context.Context, actor model.AuthContext, targetID uuid.UUID) (model.Identity, error)
	EditProfile(ctx context.Context, actor model.AuthContext, req service.UpdateProfileRequest) (model.Identity, error)
	ChangePassword(ctx context.Context, actor model.AuthContext, req service.ChangePasswordRequest) error
}

type userIDRequest struct {
	ID string `json:"id" validate:"required"`
}

type locationRequest struct {
	Country string `json:"country" validate:"max=50"`
	City    string `json:"city" validate:"max=50"`
	Address string `json:"address" validate:"max=80"`
}

type editProfileRequest struct {
	ID       string           `json:"id" validate:"required"`
	Name     *string          `json:"name" validate:"omitempty,displayname"`
	Email    *string          `json:"email" validate:"omitempty,email,max=254"`
	Gender   *string          `json:"gender" validate:"omitempty,oneof=male female other"`
	Birthday *string          `json:"birthday" validate:"omitempty,datetime=2006-01-02,pastdate"`
	Location *locationRequest `json:"location"`
	Phone    *string          `json:"phone" validate:"omitempty,phone"`
	Skills   []string         `json:"skills" validate:"omitempty,max=50,dive,min=1,max=50"`
}

type changePasswordRequest struct {
	ID              string `json:"id" validate:"required"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// User handles /users endpoints.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List handles GET /users?page=&limit=.
func (h *User) List(c *gin.Context) {
	page := queryInt(c, "page")
	limit := queryInt(c, "limit")

	users, pagination, err := h.userService.List(c.Request.Context(), page, limit)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusOK, "", gin.H{
		"users":      newUserViews(users),
		"pagination": pagination,
	})
}

// Get handles GET /users/id. The id is read from the JSON body and falls back to the id query parameter.
func (h *User) Get(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req userIDRequest
	if hasBody(c.Request) {
		if err := decodeJSON(c.Request.Body, &req); err != nil {
			handleError(c, h.logger, err)
			return
		}
	}
	if req.ID == "" {
		req.ID = c.Query("id")
	}
	targetID, err := parseUserID(req.ID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	user, err := h.userService.Get(c.Request.Context(), actor, targetID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusOK, "", gin.H{"user": newUserView(user)})
}

// EditProfile handles PUT /users/edit-profile.
func (h *User) EditProfile(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req editProfileRequest
	if err := bindJSON(c, &req); err != nil {
		handleError(c, h.logger, err)
		return
	}

	update, err := req.toUpdate()
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	user, err := h.userService.EditProfile(c.Request.Context(), actor, update)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	h.logger.Debug("User handler: profile edited",
		"user_id", user.ID)

	response.OK(c, http.StatusOK, "profile updated", gin.H{"user": newUserView(user)})
}

// ChangePassword handles POST /users/change-password.
func (h *User) ChangePassword(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req changePasswordRequest
	if err := bindJSON(c, &req); err != nil {
		handleError(c, h.logger, err)
		return
	}

	targetID, err := parseUserID(req.ID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	err = h.userService.ChangePassword(c.Request.Context(), actor, service.ChangePasswordRequest{
		ID:              targetID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusOK, "password changed successfully", nil)
}

func (h *User) actor(c *gin.Context) (model.AuthContext, bool) {
	actor, ok := h.contextManager.GetAuthContext(c.Request.Context())
	if !ok {
		handleError(c, h.logger, apierror.NewErrMissingAuthorizationToken())
		return model.AuthContext{}, false
	}
	return actor, true
}

func (r editProfileRequest) toUpdate() (service.UpdateProfileRequest, error) {
	id, err := parseUserID(r.ID)
	if err != nil {
		return service.UpdateProfileRequest{}, err
	}

	update := service.UpdateProfileRequest{
		ID:     id,
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Skills: r.Skills,
	}
	if r.Gender != nil {
		g := model.Gender(*r.Gender)
		update.Gender = &g
	}
	if r.Birthday != nil {
		b, err := time.Parse(dateLayout, *r.Birthday)
		if err != nil {
			return service.UpdateProfileRequest{}, apierror.NewErrValidation("birthday: must be a date in YYYY-MM-DD format")
		}
		update.Birthday = &b
	}
	if r.Location != nil {
		update.Location = &model.Location{
			Country: strings.TrimSpace(r.Location.Country),
			City:    strings.TrimSpace(r.Location.City),
			Address: strings.TrimSpace(r.Location.Address),
		}
	}
	return update, nil
}

func parseUserID(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, apierror.NewErrValidation("id: is required")
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, apierror.NewErrInvalidUserID()
	}
	return id, nil
}

// queryInt returns 0 for a missing or non-numeric parameter, leaving the default to the service.
func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

func hasBody(r *http.Request) bool {
	return r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}
