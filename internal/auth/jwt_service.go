package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "programador/internal/errors"
	"programador/internal/model"
)

// DefaultAccessTokenExpiry is used when no expiry is configured.
const DefaultAccessTokenExpiry = 15 * time.Minute

// ErrInvalidToken is the message for any token that fails verification.
const ErrInvalidToken = "Token ausente, inválido ou expirado"

// Claims represents JWT claims. Subject carries the email as well.
type Claims struct {
	UserID uint   `json:"usuario.id"`
	Email  string `json:"usuario.email"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewJWTService creates a new JWT service with the given secret and expiry.
func NewJWTService(secret string, expiry time.Duration) *JWTService {
	if expiry <= 0 {
		expiry = DefaultAccessTokenExpiry
	}
	return &JWTService{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// Expiry returns how long issued tokens stay valid.
func (s *JWTService) Expiry() time.Duration {
	return s.expiry
}

// Issue signs an access token for a user whose credentials were already checked.
func (s *JWTService) Issue(user *model.User) (string, error) {
	if user == nil || user.ID == 0 || user.Email == "" {
		return "", apperrors.InvalidState("cannot issue token for incomplete user")
	}

	now := s.now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInvalidState, "sign token", err)
	}
	return signed, nil
}

// Verify validates signature and expiry and returns the embedded claims.
// It does not check that the user still exists.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindAuthentication, ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == 0 || claims.Email == "" {
		return nil, apperrors.Authentication(ErrInvalidToken)
	}
	return claims, nil
}
