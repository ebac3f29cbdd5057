package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitios/internal/domain/user"
	"sitios/internal/shared/biztime"
)

func TestActivityRepository_RecordAndCount(t *testing.T) {
	repo := NewActivityRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.RecordPageView(ctx, &user.PageView{UserID: 1, Path: "/places/42", Timestamp: biztime.NowUTC()}))
	require.NoError(t, repo.RecordPageView(ctx, &user.PageView{UserID: 1, Path: "/places", Timestamp: biztime.NowUTC()}))
	require.NoError(t, repo.RecordPageView(ctx, &user.PageView{UserID: 2, Path: "/places", Timestamp: biztime.NowUTC()}))

	count, err := repo.CountPageViewsByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestActivityRepository_DeleteByUser(t *testing.T) {
	repo := NewActivityRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.RecordPageView(ctx, &user.PageView{UserID: 1, Path: "/places", Timestamp: biztime.NowUTC()}))
	require.NoError(t, repo.RecordSearch(ctx, &user.SearchQuery{UserID: 1, Query: "café", Timestamp: biztime.NowUTC()}))
	require.NoError(t, repo.RecordPageView(ctx, &user.PageView{UserID: 2, Path: "/places", Timestamp: biztime.NowUTC()}))

	require.NoError(t, repo.DeleteByUser(ctx, 1))

	count, err := repo.CountPageViewsByUser(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = repo.CountPageViewsByUser(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
