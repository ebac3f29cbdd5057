package middleware

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitios/internal/domain/user"
	"sitios/internal/domain/user/valueobjects"
	"sitios/internal/infrastructure/auth"
	"sitios/internal/shared/authorization"
	"sitios/internal/shared/biztime"
	"sitios/internal/shared/config"
	"sitios/internal/shared/logger"
)

type stubUserRepo struct {
	user *user.User
	err  error
}

func (s *stubUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return s.user, s.err
}
func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.user, s.err
}
func (s *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (s *stubUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (s *stubUserRepo) Delete(ctx context.Context, id uint) error     { return nil }
func (s *stubUserRepo) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	return nil, 0, nil
}

type stubSessionRepo struct {
	session *user.Session
	err     error
}

func (s *stubSessionRepo) Create(ctx context.Context, sess *user.Session) error { return nil }
func (s *stubSessionRepo) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	return s.session, s.err
}
func (s *stubSessionRepo) ListActiveByUser(ctx context.Context, userID uint) ([]*user.Session, error) {
	return nil, nil
}
func (s *stubSessionRepo) UpdateActivity(ctx context.Context, sessionID string) error { return nil }
func (s *stubSessionRepo) End(ctx context.Context, sessionID string) error            { return nil }
func (s *stubSessionRepo) EndAllExcept(ctx context.Context, userID uint, exceptSessionID string) error {
	return nil
}
func (s *stubSessionRepo) DeleteByUser(ctx context.Context, userID uint) error { return nil }

func storedTestUser(t *testing.T) *user.User {
	t.Helper()

	email, err := valueobjects.NewEmail("ana@example.com")
	require.NoError(t, err)
	name, err := valueobjects.NewName("Ana López")
	require.NoError(t, err)

	now := biztime.NowUTC()
	u, err := user.ReconstructUser(1, email, name, authorization.RoleUser, "hash", nil, false, now, now)
	require.NoError(t, err)
	return u
}

func authTestRequest(t *testing.T, userRepo user.Repository, sessionRepo user.SessionRepository, token string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	jwtService := auth.NewJWTService("middleware-test-secret", 60)
	m := NewAuthMiddleware(jwtService, userRepo, sessionRepo, config.CookieConfig{Name: "token"}, log)

	engine := gin.New()
	engine.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_ValidSession(t *testing.T) {
	session, err := user.NewSession(1, "203.0.113.10", "Mozilla/5.0", "", "")
	require.NoError(t, err)
	token, err := auth.NewJWTService("middleware-test-secret", 60).Issue(1, session.ID)
	require.NoError(t, err)

	w := authTestRequest(t, &stubUserRepo{user: storedTestUser(t)}, &stubSessionRepo{session: session}, token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_DeletedUser(t *testing.T) {
	token, err := auth.NewJWTService("middleware-test-secret", 60).Issue(1, "")
	require.NoError(t, err)

	w := authTestRequest(t, &stubUserRepo{err: user.ErrUserNotFound()}, &stubSessionRepo{}, token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_UserStoreFailure(t *testing.T) {
	token, err := auth.NewJWTService("middleware-test-secret", 60).Issue(1, "")
	require.NoError(t, err)

	w := authTestRequest(t, &stubUserRepo{err: fmt.Errorf("connection refused")}, &stubSessionRepo{}, token)

	assert.Equal(t, http.StatusInternalServerError, w.Code, "a store failure is not an auth failure")
}

func TestRequireAuth_SessionStoreFailure(t *testing.T) {
	token, err := auth.NewJWTService("middleware-test-secret", 60).Issue(1, "some-session-id")
	require.NoError(t, err)

	w := authTestRequest(t, &stubUserRepo{user: storedTestUser(t)}, &stubSessionRepo{err: fmt.Errorf("connection refused")}, token)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireAuth_EndedSession(t *testing.T) {
	session, err := user.NewSession(1, "203.0.113.10", "Mozilla/5.0", "", "")
	require.NoError(t, err)
	session.End()

	token, err := auth.NewJWTService("middleware-test-secret", 60).Issue(1, session.ID)
	require.NoError(t, err)

	w := authTestRequest(t, &stubUserRepo{user: storedTestUser(t)}, &stubSessionRepo{session: session}, token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
