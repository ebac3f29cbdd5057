package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sitios/internal/shared/biztime"
	apperrors "sitios/internal/shared/errors"
)

// Claims is the bearer token payload: the user identity plus, when the login
// created one, the bound session. The token is stateless; revocation happens
// indirectly by deactivating the session.
type Claims struct {
	UserID    uint   `json:"user_id"`
	SessionID string `json:"session_id,omitempty"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret     []byte
	expMinutes int
}

// NewJWTService creates a token issuer signing with HS256. expMinutes
// defaults to 60 when zero or negative; expiry forces re-login since no
// refresh mechanism exists.
func NewJWTService(secret string, expMinutes int) *JWTService {
	if expMinutes <= 0 {
		expMinutes = 60
	}
	return &JWTService{
		secret:     []byte(secret),
		expMinutes: expMinutes,
	}
}

// Issue signs a token for the user. sessionID may be empty for tokens not
// bound to a session.
func (s *JWTService) Issue(userID uint, sessionID string) (string, error) {
	now := biztime.NowUTC()

	claims := &Claims{
		UserID:    userID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates the token. Expired tokens and tampered or
// malformed tokens map to distinct auth errors so the middleware can log
// tampering without logging routine expiry.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewTokenExpiredError()
		}
		return nil, apperrors.NewTokenInvalidError()
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.NewTokenInvalidError()
}

// ExpMinutes returns the token lifetime in minutes, used to size cookies.
func (s *JWTService) ExpMinutes() int {
	return s.expMinutes
}
