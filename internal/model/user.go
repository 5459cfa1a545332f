package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for identities.
type UserStore interface {
	FindByID(ctx context.Context, id uuid.UUID, opts FindOptions) (Identity, error)
	FindByEmail(ctx context.Context, email string, opts FindOptions) (Identity, error)
	List(ctx context.Context, opts ListOptions) ([]Identity, int, error)
	Save(ctx context.Context, identity Identity) (Identity, error)
	// UpdatePassword replaces only the password hash and updated_at of id.
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string, updatedAt time.Time) error
}

// FindOptions controls which columns a lookup loads.
type FindOptions struct {
	// IncludeSecret loads the password hash and two-factor secrets.
	// Only credential checks may set it.
	IncludeSecret bool
}

// ListOptions paginates List.
type ListOptions struct {
	Offset int
	Limit  int
}

// Gender enumerates accepted gender values.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// TwoFactorMethod enumerates second factor delivery methods.
type TwoFactorMethod string

const (
	TwoFactorKey   TwoFactorMethod = "key"
	TwoFactorEmail TwoFactorMethod = "email"
	TwoFactorSMS   TwoFactorMethod = "sms"
)

// Identity is a registered account.
type Identity struct {
	ID        uuid.UUID
	Email     string
	Name      string
	IsAdmin   bool
	Gender    Gender
	Birthday  *time.Time
	Location  Location
	Phone     string
	Skills    []string
	TwoFactor TwoFactor
	// Notifications is stored as a document and has defaults on creation.
	Notifications NotificationSettings
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Secret is nil unless the identity was loaded with FindOptions.IncludeSecret
	// or is about to be saved with a new credential.
	Secret *Secret `json:"-"`
}

// Location is a postal location of the user.
type Location struct {
	Country string
	City    string
	Address string
}

// TwoFactor is the public part of second factor settings. No flow uses it yet.
type TwoFactor struct {
	Enabled  bool
	Method   TwoFactorMethod
	LastUsed *time.Time
}

// Secret holds credential material that must never leave the service.
type Secret struct {
	PasswordHash    string
	TwoFactorSecret string
	BackupCodes     []string
}

// Public returns a copy of the identity without secret material.
func (i Identity) Public() Identity {
	i.Secret = nil
	return i
}

// PasswordHash returns the stored hash or an empty string when secrets were not loaded.
func (i Identity) PasswordHash() string {
	if i.Secret == nil {
		return ""
	}
	return i.Secret.PasswordHash
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
