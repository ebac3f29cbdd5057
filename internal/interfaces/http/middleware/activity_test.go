package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitios/internal/application/user/services"
	"sitios/internal/domain/user"
	"sitios/internal/shared/logger"
)

type captureActivityRepo struct {
	views    []*user.PageView
	searches []*user.SearchQuery
}

func (r *captureActivityRepo) RecordPageView(ctx context.Context, view *user.PageView) error {
	r.views = append(r.views, view)
	return nil
}

func (r *captureActivityRepo) RecordSearch(ctx context.Context, search *user.SearchQuery) error {
	r.searches = append(r.searches, search)
	return nil
}

func (r *captureActivityRepo) CountPageViewsByUser(ctx context.Context, userID uint) (int64, error) {
	return int64(len(r.views)), nil
}

func (r *captureActivityRepo) DeleteByUser(ctx context.Context, userID uint) error { return nil }

func activityTestEngine(repo *captureActivityRepo, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	recorder := services.NewActivityRecorder(repo, log)

	engine := gin.New()
	if authenticated {
		engine.Use(func(c *gin.Context) {
			c.Set("user_id", uint(1))
		})
	}
	engine.Use(ActivityLogger(recorder))

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	engine.GET("/places", ok)
	engine.GET("/api/search", ok)
	engine.GET("/api/places", ok)
	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestActivityLogger(t *testing.T) {
	t.Run("GET outside /api/ is a page view", func(t *testing.T) {
		repo := &captureActivityRepo{}
		get(activityTestEngine(repo, true), "/places")

		require.Len(t, repo.views, 1)
		assert.Equal(t, "/places", repo.views[0].Path)
		assert.Equal(t, uint(1), repo.views[0].UserID)
		assert.Empty(t, repo.searches)
	})

	t.Run("search endpoint records the query", func(t *testing.T) {
		repo := &captureActivityRepo{}
		get(activityTestEngine(repo, true), "/api/search?q=caf%C3%A9s")

		require.Len(t, repo.searches, 1)
		assert.Equal(t, "cafés", repo.searches[0].Query)
		assert.Empty(t, repo.views, "API traffic is not a page view")
	})

	t.Run("search without a query records nothing", func(t *testing.T) {
		repo := &captureActivityRepo{}
		get(activityTestEngine(repo, true), "/api/search")

		assert.Empty(t, repo.searches)
		assert.Empty(t, repo.views)
	})

	t.Run("other API paths record nothing", func(t *testing.T) {
		repo := &captureActivityRepo{}
		get(activityTestEngine(repo, true), "/api/places")

		assert.Empty(t, repo.views)
		assert.Empty(t, repo.searches)
	})

	t.Run("anonymous requests record nothing", func(t *testing.T) {
		repo := &captureActivityRepo{}
		get(activityTestEngine(repo, false), "/places")

		assert.Empty(t, repo.views)
	})
}
