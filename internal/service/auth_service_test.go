package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"programador/internal/auth"
	apperrors "programador/internal/errors"
	"programador/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		nameField string
		email     string
		password  string
		setupMock func(*MockUserRepository)
		wantKind  apperrors.Kind
		wantMsg   string
	}{
		{
			name:      "successful registration",
			nameField: "Ana",
			email:     "ana@x.com",
			password:  "abcdef",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ana@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:      "email already registered",
			nameField: "Ana",
			email:     "ana@x.com",
			password:  "abcdef",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ana@x.com").Return(&model.User{ID: 1, Email: "ana@x.com"}, nil)
			},
			wantKind: apperrors.KindValidation,
			wantMsg:  "O e-mail ana@x.com já está cadastrado!",
		},
		{
			name:      "lost race on unique index",
			nameField: "Ana",
			email:     "ana@x.com",
			password:  "abcdef",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ana@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			wantKind: apperrors.KindValidation,
			wantMsg:  "O e-mail ana@x.com já está cadastrado!",
		},
		{
			name:      "short password after trim",
			nameField: "Ana",
			email:     "ana@x.com",
			password:  "  abc   ",
			setupMock: func(m *MockUserRepository) {},
			wantKind:  apperrors.KindValidation,
			wantMsg:   auth.ErrPasswordTooShort,
		},
		{
			name:      "missing name",
			email:     "ana@x.com",
			password:  "abcdef",
			setupMock: func(m *MockUserRepository) {},
			wantKind:  apperrors.KindValidation,
			wantMsg:   MsgInvalidData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, auth.SHA256Hasher{}, new(MockTokenIssuer))
			user, err := svc.Register(context.Background(), tt.nameField, tt.email, tt.password)

			if tt.wantKind != apperrors.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
				assert.Equal(t, tt.wantMsg, err.Error())
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.nameField, user.Name)
				assert.Len(t, user.PasswordHash, 64)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_RegisterStorageFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "ana@x.com").Return(nil, errors.New("connection reset"))

	svc := NewAuthService(mockRepo, auth.SHA256Hasher{}, new(MockTokenIssuer))
	_, err := svc.Register(context.Background(), "Ana", "ana@x.com", "abcdef")

	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnknown, apperrors.KindOf(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login(t *testing.T) {
	digest, err := auth.SHA256Hasher{}.Hash("abcdef")
	require.NoError(t, err)
	stored := &model.User{ID: 3, Email: "ana@x.com", Name: "Ana", PasswordHash: digest}

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(*MockUserRepository, *MockTokenIssuer)
		wantToken string
		wantKind  apperrors.Kind
	}{
		{
			name:     "successful login",
			email:    "ana@x.com",
			password: "abcdef",
			setupMock: func(mRepo *MockUserRepository, mIssuer *MockTokenIssuer) {
				mRepo.On("FindByEmail", mock.Anything, "ana@x.com").Return(stored, nil)
				mIssuer.On("Issue", stored).Return("signed.token.value", nil)
			},
			wantToken: "signed.token.value",
		},
		{
			name:     "wrong password",
			email:    "ana@x.com",
			password: "abcdeg",
			setupMock: func(mRepo *MockUserRepository, mIssuer *MockTokenIssuer) {
				mRepo.On("FindByEmail", mock.Anything, "ana@x.com").Return(stored, nil)
			},
			wantKind: apperrors.KindAuthentication,
		},
		{
			name:     "unknown email",
			email:    "bia@x.com",
			password: "abcdef",
			setupMock: func(mRepo *MockUserRepository, mIssuer *MockTokenIssuer) {
				mRepo.On("FindByEmail", mock.Anything, "bia@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			wantKind: apperrors.KindAuthentication,
		},
		{
			name:      "blank password",
			email:     "ana@x.com",
			password:  "   ",
			setupMock: func(mRepo *MockUserRepository, mIssuer *MockTokenIssuer) {},
			wantKind:  apperrors.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockIssuer := new(MockTokenIssuer)
			tt.setupMock(mockRepo, mockIssuer)

			svc := NewAuthService(mockRepo, auth.SHA256Hasher{}, mockIssuer)
			token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantKind != apperrors.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}

			mockRepo.AssertExpectations(t)
			mockIssuer.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginIssuesVerifiableToken(t *testing.T) {
	hasher := auth.BcryptHasher{Cost: 4}
	digest, err := hasher.Hash("abcdef")
	require.NoError(t, err)

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "ana@x.com").
		Return(&model.User{ID: 9, Email: "ana@x.com", PasswordHash: digest}, nil)

	jwtService := auth.NewJWTService("test-secret", time.Minute)
	svc := NewAuthService(mockRepo, hasher, jwtService)

	token, err := svc.Login(context.Background(), "ana@x.com", " abcdef ")
	require.NoError(t, err)

	claims, err := jwtService.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(9), claims.UserID)
	assert.Equal(t, "ana@x.com", claims.Email)
}
