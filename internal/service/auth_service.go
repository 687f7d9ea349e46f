package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"programador/internal/auth"
	apperrors "programador/internal/errors"
	"programador/internal/model"
	"programador/internal/repository"
)

const (
	MsgInvalidData        = "Dados inválidos"
	MsgInvalidCredentials = "E-mail ou senha inválidos!"
	MsgUserRegistered     = "Usuário cadastrado com sucesso!"
)

// TokenIssuer mints bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *model.User) (string, error)
}

// AuthService handles authentication operations.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (accessToken string, err error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   auth.PasswordHasher
	issuer   TokenIssuer
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, hasher auth.PasswordHasher, issuer TokenIssuer) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
	}
}

func emailTaken(email string) error {
	return apperrors.Validation(fmt.Sprintf("O e-mail %s já está cadastrado!", email))
}

// Register creates a user with a hashed password. The password is checked
// before the email so a short password is reported first.
func (s *authService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperrors.Validation(MsgInvalidData)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, emailTaken(email)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: digest,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// a concurrent registration won the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, emailTaken(email)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns a freshly issued access token.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || strings.TrimSpace(password) == "" {
		return "", apperrors.Validation(MsgInvalidData)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.Authentication(MsgInvalidCredentials)
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return "", apperrors.Authentication(MsgInvalidCredentials)
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}
