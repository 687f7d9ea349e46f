package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "programador/internal/errors"
	"programador/internal/model"
)

func testUser() *model.User {
	return &model.User{ID: 7, Email: "ana@x.com", Name: "Ana"}
}

func TestJWTService_IssueVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 0)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "ana@x.com", claims.Email)
	assert.Equal(t, "ana@x.com", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(DefaultAccessTokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_IssueIncompleteUser(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)

	for _, u := range []*model.User{nil, {Email: "ana@x.com"}, {ID: 1}} {
		_, err := svc.Issue(u)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	}
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)
	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	i := strings.LastIndex(token, ".") + 5
	replacement := byte('a')
	if token[i] == 'a' {
		replacement = 'b'
	}
	tampered := token[:i] + string(replacement) + token[i+1:]

	_, err = svc.Verify(tampered)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))
}

func TestJWTService_TamperedPayload(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)
	other := NewJWTService("other-secret", time.Minute)

	forged, err := other.Issue(&model.User{ID: 1, Email: "admin@x.com"})
	require.NoError(t, err)

	_, err = svc.Verify(forged)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)
	issuedAt := time.Now().Add(-2 * time.Minute)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)

	claims := &Claims{
		UserID: 7,
		Email:  "ana@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))
}

func TestJWTService_RequiresExpiry(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)

	claims := &Claims{UserID: 7, Email: "ana@x.com"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))
}

func TestJWTService_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)

	for _, token := range []string{"", "abc", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication), "token %q", token)
	}
}
