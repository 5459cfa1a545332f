// Package password hashes, verifies and validates user passwords.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/account-service/internal/model"
)

const (
	saltLen = 16
	keyLen  = 32
)

// KDFParams are argon2id cost parameters.
type KDFParams struct {
	Time   uint32
	MemKiB uint32
	Par    uint8
}

// DefaultKDFParams keep a single hash in the tens of milliseconds on current hardware.
var DefaultKDFParams = KDFParams{Time: 1, MemKiB: 64 * 1024, Par: 4}

// NewKDFParams fills zero values with defaults.
func NewKDFParams(time, memKiB uint32, par uint8) KDFParams {
	p := KDFParams{Time: time, MemKiB: memKiB, Par: par}
	if p.Time == 0 {
		p.Time = DefaultKDFParams.Time
	}
	if p.MemKiB == 0 {
		p.MemKiB = DefaultKDFParams.MemKiB
	}
	if p.Par == 0 {
		p.Par = DefaultKDFParams.Par
	}
	return p
}

// Argon2 hashes with argon2id and verifies argon2id and legacy bcrypt hashes.
type Argon2 struct {
	params KDFParams
}

// NewArgon2 creates an Argon2 hasher with the given parameters.
func NewArgon2(params KDFParams) *Argon2 {
	return &Argon2{params: params}
}

// Hash returns an encoded hash: $argon2id$v=19$m=MEM,t=TIME,p=PAR$SALT$KEY.
func (a *Argon2) Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: read salt: %w", model.ErrHashingFailure, err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, a.params.Time, a.params.MemKiB, a.params.Par, keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		a.params.MemKiB, a.params.Time, a.params.Par,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether plaintext matches hash. Malformed hashes never match.
func (a *Argon2) Verify(plaintext, hash string) bool {
	if isBcrypt(hash) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
	}

	params, salt, expected, err := decode(hash)
	if err != nil {
		return false
	}

	key := argon2.IDKey([]byte(plaintext), salt, params.Time, params.MemKiB, params.Par, uint32(len(expected)))

	return subtle.ConstantTimeCompare(key, expected) == 1
}

// NeedsRehash reports whether hash was produced by another algorithm or other parameters.
func (a *Argon2) NeedsRehash(hash string) bool {
	if isBcrypt(hash) {
		return true
	}
	params, _, _, err := decode(hash)
	if err != nil {
		return true
	}
	return params != a.params
}

func isBcrypt(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$")
}

func decode(hash string) (KDFParams, []byte, []byte, error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return KDFParams{}, nil, nil, fmt.Errorf("invalid argon2id hash format")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return KDFParams{}, nil, nil, fmt.Errorf("unsupported argon2 version")
	}

	var p KDFParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.MemKiB, &p.Time, &p.Par); err != nil {
		return KDFParams{}, nil, nil, fmt.Errorf("parse argon2id params: %w", err)
	}
	if p.Time == 0 || p.MemKiB == 0 || p.Par == 0 {
		return KDFParams{}, nil, nil, fmt.Errorf("zero argon2id params")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return KDFParams{}, nil, nil, fmt.Errorf("decode salt: %w", err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return KDFParams{}, nil, nil, fmt.Errorf("decode key")
	}

	return p, salt, key, nil
}
