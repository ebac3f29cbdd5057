package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s, err := NewSession(1, "203.0.113.10", "Mozilla/5.0", "Chrome on Windows", "Bogotá, Colombia")
	require.NoError(t, err)

	assert.Len(t, s.ID, 64)
	assert.Equal(t, uint(1), s.UserID)
	assert.True(t, s.IsActive())
	assert.Nil(t, s.EndedAt)
	assert.Equal(t, s.StartedAt, s.LastActivityAt)
}

func TestNewSession_RequiresUserID(t *testing.T) {
	_, err := NewSession(0, "203.0.113.10", "Mozilla/5.0", "", "")
	assert.Error(t, err)
}

func TestNewSession_UniqueIDs(t *testing.T) {
	a, err := NewSession(1, "", "", "", "")
	require.NoError(t, err)
	b, err := NewSession(1, "", "", "", "")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSession_End(t *testing.T) {
	s, err := NewSession(1, "", "", "", "")
	require.NoError(t, err)

	s.End()
	assert.False(t, s.IsActive())
	require.NotNil(t, s.EndedAt)

	firstEnd := *s.EndedAt
	s.End()
	assert.Equal(t, firstEnd, *s.EndedAt, "second end keeps original timestamp")
}

func TestSession_Touch(t *testing.T) {
	s, err := NewSession(1, "", "", "", "")
	require.NoError(t, err)

	before := s.LastActivityAt
	s.Touch()
	assert.False(t, s.LastActivityAt.Before(before))
}
