package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sitios/internal/shared/errors"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	service := NewJWTService("test-secret", 60)

	token, err := service.Issue(42, "abc123sessionid")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "abc123sessionid", claims.SessionID)
}

func TestJWTService_Issue_WithoutSession(t *testing.T) {
	service := NewJWTService("test-secret", 60)

	token, err := service.Issue(7, "")
	require.NoError(t, err)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Empty(t, claims.SessionID)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	service := NewJWTService("test-secret", 60)

	claims := &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.Verify(expired)
	require.Error(t, err)

	authErr := apperrors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, apperrors.ErrorTypeTokenExpired, authErr.Type)
	assert.False(t, apperrors.IsSecurityEvent(err), "routine expiry is not a security event")
}

func TestJWTService_Verify_ExpiryBoundary(t *testing.T) {
	service := NewJWTService("test-secret", 60)

	sign := func(expiresAt time.Time) string {
		claims := &Claims{
			UserID: 42,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(expiresAt),
				IssuedAt:  jwt.NewNumericDate(expiresAt.Add(-time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		return signed
	}

	t.Run("valid one minute before expiry", func(t *testing.T) {
		claims, err := service.Verify(sign(time.Now().Add(time.Minute)))
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
	})

	t.Run("rejected one minute after expiry", func(t *testing.T) {
		_, err := service.Verify(sign(time.Now().Add(-time.Minute)))
		require.Error(t, err)
		authErr := apperrors.GetAuthError(err)
		require.NotNil(t, authErr)
		assert.Equal(t, apperrors.ErrorTypeTokenExpired, authErr.Type)
	})
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", 60).Issue(42, "")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 60).Verify(token)
	require.Error(t, err)
	assert.True(t, apperrors.IsSecurityEvent(err))
}

func TestJWTService_Verify_Malformed(t *testing.T) {
	service := NewJWTService("test-secret", 60)

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		_, err := service.Verify(token)
		assert.Error(t, err)
	}
}

func TestJWTService_ExpMinutes(t *testing.T) {
	assert.Equal(t, 30, NewJWTService("s", 30).ExpMinutes())
	assert.Equal(t, 60, NewJWTService("s", 0).ExpMinutes(), "defaults when unset")
	assert.Equal(t, 60, NewJWTService("s", -5).ExpMinutes())
}
