package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/account-service/internal/access"
	"github.com/dtroode/account-service/internal/apierror"
	"github.com/dtroode/account-service/internal/logger"
	"github.com/dtroode/account-service/internal/model"
	"github.com/dtroode/account-service/internal/password"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination describes a page of a listing.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// UpdateProfileRequest lists the mutable profile fields. Nil fields are left unchanged.
type UpdateProfileRequest struct {
	ID       uuid.UUID
	Name     *string
	Email    *string
	Gender   *model.Gender
	Birthday *time.Time
	Location *model.Location
	Phone    *string
	// Skills replaces the whole list when non-nil. An empty slice clears it.
	Skills []string
}

// ChangePasswordRequest carries a credential rotation.
type ChangePasswordRequest struct {
	ID              uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// User implements profile reads, profile edits and credential rotation.
type User struct {
	users  model.UserStore
	hasher model.PasswordHasher
	logger *logger.Logger
	now    func() time.Time
}

// NewUser creates a new User service.
func NewUser(users model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *User {
	return &User{
		users:  users,
		hasher: hasher,
		logger: logger,
		now:    time.Now,
	}
}

// List returns a page of identities without secret material.
// Out of range page and limit values fall back to their defaults, limit is capped at MaxLimit.
// A page past the end is empty.
func (s *User) List(ctx context.Context, page, limit int) ([]model.Identity, Pagination, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	users, total, err := s.users.List(ctx, model.ListOptions{
		Offset: pageOffset(page, limit),
		Limit:  limit,
	})
	if err != nil {
		s.logger.Error("User service: failed to list users",
			"page", page,
			"limit", limit,
			"error", err.Error())
		return nil, Pagination{}, fmt.Errorf("failed to list users: %w", err)
	}

	for i := range users {
		users[i] = users[i].Public()
	}

	return users, Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: (total + limit - 1) / limit,
	}, nil
}

// pageOffset returns the row offset of page. Pages beyond the int range
// saturate at math.MaxInt, which yields an empty page.
func pageOffset(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// Get returns the identity with targetID if actor may access it.
func (s *User) Get(ctx context.Context, actor model.AuthContext, targetID uuid.UUID) (model.Identity, error) {
	if !access.CanAccess(actor, targetID) {
		s.logger.Info("User service: access denied",
			"actor_id", actor.ID(),
			"target_id", targetID)
		return model.Identity{}, apierror.NewErrForbidden("you are not allowed to view this user")
	}

	identity, err := s.load(ctx, targetID, model.FindOptions{})
	if err != nil {
		return model.Identity{}, err
	}

	return identity.Public(), nil
}

// EditProfile applies req to the target identity. A request that changes
// nothing does not write to the store.
func (s *User) EditProfile(ctx context.Context, actor model.AuthContext, req UpdateProfileRequest) (model.Identity, error) {
	if !access.CanAccess(actor, req.ID) {
		s.logger.Info("User service: profile edit denied",
			"actor_id", actor.ID(),
			"target_id", req.ID)
		return model.Identity{}, apierror.NewErrForbidden("you are not allowed to edit this user")
	}

	current, err := s.load(ctx, req.ID, model.FindOptions{})
	if err != nil {
		return model.Identity{}, err
	}

	if req.Email != nil {
		email := model.NormalizeEmail(*req.Email)
		req.Email = &email
		if email != current.Email {
			if err := s.ensureEmailFree(ctx, email, current.ID); err != nil {
				return model.Identity{}, err
			}
		}
	}

	updated, changed := applyProfile(current, req)
	if !changed {
		s.logger.Debug("User service: profile unchanged",
			"user_id", current.ID)
		return current.Public(), nil
	}
	updated.UpdatedAt = s.now().UTC()

	saved, err := s.users.Save(ctx, updated)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.Identity{}, apierror.NewErrEmailIsTaken(updated.Email)
		}
		if errors.Is(err, model.ErrNotFound) {
			return model.Identity{}, apierror.NewErrUserNotFound()
		}
		s.logger.Error("User service: failed to save profile",
			"user_id", current.ID,
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("failed to save profile: %w", err)
	}

	s.logger.Info("User service: profile updated",
		"user_id", saved.ID,
		"actor_id", actor.ID())

	return saved.Public(), nil
}

// ChangePassword rotates the password of the target identity.
// Nothing is persisted unless every check passes and the new hash is computed.
func (s *User) ChangePassword(ctx context.Context, actor model.AuthContext, req ChangePasswordRequest) error {
	if !access.CanAccess(actor, req.ID) {
		s.logger.Info("User service: password change denied",
			"actor_id", actor.ID(),
			"target_id", req.ID)
		return apierror.NewErrForbidden("you are not allowed to change this user's password")
	}

	if req.CurrentPassword == "" {
		return apierror.NewErrValidation("current password is required")
	}
	if err := password.Validate(req.NewPassword); err != nil {
		return apierror.NewErrWeakPassword(err.Error())
	}

	identity, err := s.load(ctx, req.ID, model.FindOptions{IncludeSecret: true})
	if err != nil {
		return err
	}
	hash := identity.PasswordHash()

	ok, err := s.hasher.Verify(ctx, req.CurrentPassword, hash)
	if err != nil {
		return fmt.Errorf("failed to verify current password: %w", err)
	}
	if !ok {
		s.logger.Info("User service: current password mismatch",
			"user_id", identity.ID)
		return apierror.NewErrInvalidCurrentPassword()
	}

	reused, err := s.hasher.Verify(ctx, req.NewPassword, hash)
	if err != nil {
		return fmt.Errorf("failed to compare new password: %w", err)
	}
	if reused {
		return apierror.NewErrPasswordReuse()
	}

	newHash, err := s.hasher.Hash(ctx, req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, identity.ID, newHash, s.now().UTC()); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apierror.NewErrUserNotFound()
		}
		s.logger.Error("User service: failed to save new password",
			"user_id", identity.ID,
			"error", err.Error())
		return fmt.Errorf("failed to save new password: %w", err)
	}

	s.logger.Info("User service: password changed",
		"user_id", identity.ID,
		"actor_id", actor.ID())

	return nil
}

func (s *User) load(ctx context.Context, id uuid.UUID, opts model.FindOptions) (model.Identity, error) {
	identity, err := s.users.FindByID(ctx, id, opts)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Identity{}, apierror.NewErrUserNotFound()
		}
		s.logger.Error("User service: failed to load user",
			"user_id", id,
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("failed to load user: %w", err)
	}
	if opts.IncludeSecret && identity.Secret == nil {
		return model.Identity{}, fmt.Errorf("store returned user %s without credentials", id)
	}
	return identity, nil
}

func (s *User) ensureEmailFree(ctx context.Context, email string, owner uuid.UUID) error {
	other, err := s.users.FindByEmail(ctx, email, model.FindOptions{})
	switch {
	case errors.Is(err, model.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to check email: %w", err)
	case other.ID != owner:
		return apierror.NewErrEmailIsTaken(email)
	}
	return nil
}

func applyProfile(u model.Identity, req UpdateProfileRequest) (model.Identity, bool) {
	changed := false
	set := func(dst *string, src *string) {
		if src != nil && *dst != *src {
			*dst = *src
			changed = true
		}
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		set(&u.Name, &name)
	}
	set(&u.Email, req.Email)
	set(&u.Phone, req.Phone)

	if req.Gender != nil && u.Gender != *req.Gender {
		u.Gender = *req.Gender
		changed = true
	}
	if req.Birthday != nil && (u.Birthday == nil || !u.Birthday.Equal(*req.Birthday)) {
		b := *req.Birthday
		u.Birthday = &b
		changed = true
	}
	if req.Location != nil && u.Location != *req.Location {
		u.Location = *req.Location
		changed = true
	}
	if req.Skills != nil && !slices.Equal(u.Skills, req.Skills) {
		u.Skills = slices.Clone(req.Skills)
		changed = true
	}

	return u, changed
}
