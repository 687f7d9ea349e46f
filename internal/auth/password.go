package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	apperrors "programador/internal/errors"
)

const (
	// MinPasswordLength is counted in characters after trimming.
	MinPasswordLength = 6

	bcryptCost = 10
)

// ErrPasswordTooShort is the message for passwords under MinPasswordLength.
const ErrPasswordTooShort = "A senha precisa ter pelo menos 6 caracteres"

// PasswordHasher turns plaintext passwords into stored digests.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(digest, plaintext string) bool
}

// NewPasswordHasher returns the hasher for a PASSWORD_SCHEME value.
func NewPasswordHasher(scheme string) (PasswordHasher, error) {
	switch scheme {
	case "bcrypt", "":
		return BcryptHasher{Cost: bcryptCost}, nil
	case "sha256":
		return SHA256Hasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

// NormalizePassword trims surrounding whitespace and enforces the minimum length.
func NormalizePassword(plaintext string) (string, error) {
	trimmed := strings.TrimSpace(plaintext)
	if utf8.RuneCountInString(trimmed) < MinPasswordLength {
		return "", apperrors.Validation(ErrPasswordTooShort)
	}
	return trimmed, nil
}

// SHA256Hasher produces unsalted hex SHA-256 digests. Deterministic; kept for
// databases populated with this scheme.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(plaintext string) (string, error) {
	normalized, err := NormalizePassword(plaintext)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Compare(digest, plaintext string) bool {
	candidate, err := h.Hash(plaintext)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1
}

// BcryptHasher produces salted bcrypt digests.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(plaintext string) (string, error) {
	normalized, err := NormalizePassword(plaintext)
	if err != nil {
		return "", err
	}
	cost := h.Cost
	if cost == 0 {
		cost = bcryptCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(normalized), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (h BcryptHasher) Compare(digest, plaintext string) bool {
	normalized, err := NormalizePassword(plaintext)
	if err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(normalized)) == nil
}
