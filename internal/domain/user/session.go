package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"sitios/internal/shared/biztime"
)

// Session records one authenticated login. A session is active exactly while
// EndedAt is nil; ending it is how a stateless bearer token gets revoked.
type Session struct {
	ID             string
	UserID         uint
	IPAddress      string
	UserAgent      string
	DeviceName     string
	Location       string
	StartedAt      time.Time
	LastActivityAt time.Time
	EndedAt        *time.Time
	Active         bool
}

// NewSession creates an active session. Device and location labels are
// best-effort enrichment and may be empty.
func NewSession(userID uint, ipAddress, userAgent, deviceName, location string) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Session{
		ID:             id,
		UserID:         userID,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		DeviceName:     deviceName,
		Location:       location,
		StartedAt:      now,
		LastActivityAt: now,
		Active:         true,
	}, nil
}

// IsActive reports whether the session can still authenticate requests.
func (s *Session) IsActive() bool {
	return s.Active && s.EndedAt == nil
}

// Touch updates the activity heartbeat. Last writer wins.
func (s *Session) Touch() {
	s.LastActivityAt = biztime.NowUTC()
}

// End deactivates the session. Idempotent.
func (s *Session) End() {
	if s.EndedAt != nil {
		return
	}
	now := biztime.NowUTC()
	s.EndedAt = &now
	s.Active = false
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// SessionRepository persists sessions. Rows are never physically deleted
// except through cascading user deletion.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	ListActiveByUser(ctx context.Context, userID uint) ([]*Session, error)
	UpdateActivity(ctx context.Context, sessionID string) error
	End(ctx context.Context, sessionID string) error
	EndAllExcept(ctx context.Context, userID uint, exceptSessionID string) error
	DeleteByUser(ctx context.Context, userID uint) error
}
