package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/account-service/internal/apierror"
	"github.com/dtroode/account-service/internal/logger"
	"github.com/dtroode/account-service/internal/model"
	"github.com/dtroode/account-service/internal/password"
)

// dummyPassword is hashed once and verified against when a login names an
// unknown email, so both paths cost one hash verification.
const dummyPassword = "account-service-dummy-Passw0rd"

// RegisterRequest carries a new account.
type RegisterRequest struct {
	Email    string
	Password string
	Name     string
}

// Session is the result of a successful registration or login.
type Session struct {
	User  model.Identity
	Token string
}

// Auth implements registration and login.
type Auth struct {
	users  model.UserStore
	hasher model.PasswordHasher
	tokens model.TokenManager
	logger *logger.Logger
	now    func() time.Time

	dummyMu   sync.Mutex
	dummyHash string
}

// NewAuth creates a new Auth service.
func NewAuth(users model.UserStore, hasher model.PasswordHasher, tokens model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
	}
}

// Register creates an identity with default profile settings and issues a token for it.
func (a *Auth) Register(ctx context.Context, req RegisterRequest) (Session, error) {
	email := model.NormalizeEmail(req.Email)
	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	if err := password.Validate(req.Password); err != nil {
		return Session{}, apierror.NewErrWeakPassword(err.Error())
	}

	_, err := a.users.FindByEmail(ctx, email, model.FindOptions{})
	switch {
	case err == nil:
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return Session{}, apierror.NewErrEmailIsTaken(email)
	case !errors.Is(err, model.ErrNotFound):
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(ctx, req.Password)
	if err != nil {
		return Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now().UTC()
	user := model.Identity{
		ID:            uuid.New(),
		Email:         email,
		Name:          strings.TrimSpace(req.Name),
		Gender:        model.GenderOther,
		Notifications: model.DefaultNotificationSettings(),
		CreatedAt:     now,
		UpdatedAt:     now,
		Secret:        &model.Secret{PasswordHash: hash},
	}

	saved, err := a.users.Save(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return Session{}, apierror.NewErrEmailIsTaken(email)
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.issue(saved.ID)
	if err != nil {
		return Session{}, err
	}

	a.logger.Info("Auth service: user registered",
		"user_id", saved.ID)

	return Session{User: saved.Public(), Token: token}, nil
}

// Login checks credentials and issues a token. Hashes produced by an older
// algorithm or other parameters are upgraded on success.
func (a *Auth) Login(ctx context.Context, email, plaintext string) (Session, error) {
	email = model.NormalizeEmail(email)

	user, err := a.users.FindByEmail(ctx, email, model.FindOptions{IncludeSecret: true})
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			a.logger.Error("Auth service: failed to get user by email",
				"email", email,
				"error", err.Error())
			return Session{}, fmt.Errorf("failed to get user by email: %w", err)
		}
		if _, err := a.hasher.Verify(ctx, plaintext, a.dummy(ctx)); err != nil {
			return Session{}, fmt.Errorf("failed to verify password: %w", err)
		}
		a.logger.Info("Auth service: login for unknown email",
			"email", email)
		return Session{}, apierror.NewErrInvalidLogin()
	}

	hash := user.PasswordHash()
	ok, err := a.hasher.Verify(ctx, plaintext, hash)
	if err != nil {
		return Session{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		a.logger.Info("Auth service: invalid password",
			"user_id", user.ID)
		return Session{}, apierror.NewErrInvalidLogin()
	}

	if a.hasher.NeedsRehash(hash) {
		a.rehash(ctx, user, plaintext)
	}

	token, err := a.issue(user.ID)
	if err != nil {
		return Session{}, err
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return Session{User: user.Public(), Token: token}, nil
}

// rehash upgrades a stored hash. Failures are logged and do not fail the login.
func (a *Auth) rehash(ctx context.Context, user model.Identity, plaintext string) {
	newHash, err := a.hasher.Hash(ctx, plaintext)
	if err != nil {
		a.logger.Warn("Auth service: failed to rehash password",
			"user_id", user.ID,
			"error", err.Error())
		return
	}

	if err := a.users.UpdatePassword(ctx, user.ID, newHash, a.now().UTC()); err != nil {
		a.logger.Warn("Auth service: failed to store rehashed password",
			"user_id", user.ID,
			"error", err.Error())
		return
	}

	a.logger.Info("Auth service: password hash upgraded",
		"user_id", user.ID)
}

func (a *Auth) issue(userID uuid.UUID) (string, error) {
	token, err := a.tokens.Issue(userID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", userID,
			"error", err.Error())
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

func (a *Auth) dummy(ctx context.Context) string {
	a.dummyMu.Lock()
	defer a.dummyMu.Unlock()

	if a.dummyHash != "" {
		return a.dummyHash
	}
	hash, err := a.hasher.Hash(ctx, dummyPassword)
	if err != nil {
		a.logger.Warn("Auth service: failed to compute dummy hash",
			"error", err.Error())
		return ""
	}
	a.dummyHash = hash
	return hash
}
