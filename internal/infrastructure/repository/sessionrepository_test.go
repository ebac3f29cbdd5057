package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sitios/internal/shared/errors"
)

func TestSessionRepository_CreateAndGet(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))
	session := mustCreateSession(t, repo, 1)

	found, err := repo.GetByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, found.ID)
	assert.Equal(t, uint(1), found.UserID)
	assert.Equal(t, "Chrome on Windows", found.DeviceName)
	assert.Equal(t, "Bogotá, Colombia", found.Location)
	assert.True(t, found.IsActive())

	_, err = repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestSessionRepository_ListActiveByUser(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))

	first := mustCreateSession(t, repo, 1)
	second := mustCreateSession(t, repo, 1)
	mustCreateSession(t, repo, 2)

	ended := mustCreateSession(t, repo, 1)
	require.NoError(t, repo.End(context.Background(), ended.ID))

	sessions, err := repo.ListActiveByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	ids := []string{sessions[0].ID, sessions[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
}

func TestSessionRepository_ListActiveByUser_OrdersByActivity(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))

	older := mustCreateSession(t, repo, 1)
	newer := mustCreateSession(t, repo, 1)

	// Bump the second session's heartbeat well past the first
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, repo.UpdateActivity(context.Background(), newer.ID))

	sessions, err := repo.ListActiveByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, newer.ID, sessions[0].ID)
	assert.Equal(t, older.ID, sessions[1].ID)
}

func TestSessionRepository_UpdateActivity(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))
	session := mustCreateSession(t, repo, 1)

	require.NoError(t, repo.UpdateActivity(context.Background(), session.ID))

	t.Run("unknown session", func(t *testing.T) {
		err := repo.UpdateActivity(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("ended session", func(t *testing.T) {
		require.NoError(t, repo.End(context.Background(), session.ID))
		err := repo.UpdateActivity(context.Background(), session.ID)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestSessionRepository_End(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))
	session := mustCreateSession(t, repo, 1)

	require.NoError(t, repo.End(context.Background(), session.ID))

	found, err := repo.GetByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive())
	assert.NotNil(t, found.EndedAt)

	assert.NoError(t, repo.End(context.Background(), session.ID), "ending twice is a no-op")
	assert.NoError(t, repo.End(context.Background(), "missing"), "ending a missing session is a no-op")
}

func TestSessionRepository_EndAllExcept(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))

	current := mustCreateSession(t, repo, 1)
	other1 := mustCreateSession(t, repo, 1)
	other2 := mustCreateSession(t, repo, 1)
	foreign := mustCreateSession(t, repo, 2)

	require.NoError(t, repo.EndAllExcept(context.Background(), 1, current.ID))

	sessions, err := repo.ListActiveByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, current.ID, sessions[0].ID)

	for _, id := range []string{other1.ID, other2.ID} {
		found, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, found.IsActive())
	}

	// Another user's sessions are untouched
	found, err := repo.GetByID(context.Background(), foreign.ID)
	require.NoError(t, err)
	assert.True(t, found.IsActive())
}

func TestSessionRepository_DeleteByUser(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))

	session := mustCreateSession(t, repo, 1)
	foreign := mustCreateSession(t, repo, 2)

	require.NoError(t, repo.DeleteByUser(context.Background(), 1))

	_, err := repo.GetByID(context.Background(), session.ID)
	assert.Error(t, err)

	_, err = repo.GetByID(context.Background(), foreign.ID)
	assert.NoError(t, err)
}
