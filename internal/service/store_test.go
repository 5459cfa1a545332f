package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/account-service/internal/model"
)

// memStore is an in-memory UserStore used by scenario tests.
type memStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.Identity
	// saves counts every write, profile or credential.
	saves int
}

func newMemStore() *memStore {
	return &memStore{users: make(map[uuid.UUID]model.Identity)}
}

func (s *memStore) project(u model.Identity, opts model.FindOptions) model.Identity {
	if !opts.IncludeSecret {
		return u.Public()
	}
	if u.Secret != nil {
		secret := *u.Secret
		u.Secret = &secret
	}
	return u
}

func (s *memStore) FindByID(_ context.Context, id uuid.UUID, opts model.FindOptions) (model.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return model.Identity{}, model.ErrNotFound
	}
	return s.project(u, opts), nil
}

func (s *memStore) FindByEmail(_ context.Context, email string, opts model.FindOptions) (model.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = model.NormalizeEmail(email)
	for _, u := range s.users {
		if u.Email == email {
			return s.project(u, opts), nil
		}
	}
	return model.Identity{}, model.ErrNotFound
}

func (s *memStore) List(_ context.Context, opts model.ListOptions) ([]model.Identity, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Identity, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.Public())
	}
	total := len(out)
	if opts.Offset >= total {
		return []model.Identity{}, total, nil
	}
	end := min(opts.Offset+opts.Limit, total)
	return out[opts.Offset:end], total, nil
}

func (s *memStore) Save(_ context.Context, u model.Identity) (model.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.Email = model.NormalizeEmail(u.Email)
	for id, other := range s.users {
		if id != u.ID && other.Email == u.Email {
			return model.Identity{}, model.ErrDuplicateEmail
		}
	}

	existing, ok := s.users[u.ID]
	if u.Secret == nil {
		if !ok {
			return model.Identity{}, model.ErrNotFound
		}
		u.Secret = existing.Secret
	} else {
		secret := *u.Secret
		u.Secret = &secret
	}
	s.users[u.ID] = u
	s.saves++

	return u.Public(), nil
}

func (s *memStore) UpdatePassword(_ context.Context, id uuid.UUID, hash string, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return model.ErrNotFound
	}
	secret := model.Secret{}
	if u.Secret != nil {
		secret = *u.Secret
	}
	secret.PasswordHash = hash
	u.Secret = &secret
	u.UpdatedAt = updatedAt
	s.users[id] = u
	s.saves++

	return nil
}
