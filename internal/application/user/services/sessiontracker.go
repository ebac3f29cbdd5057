package services

import (
	"context"
	"fmt"

	"sitios/internal/domain/user"
	"sitios/internal/shared/logger"
	"sitios/internal/shared/useragent"
)

// GeoResolver resolves a human-readable location label for an IP address.
// Implementations must degrade to a label on failure, never an error.
type GeoResolver interface {
	Locate(ctx context.Context, ip string) string
}

// SessionTracker creates enriched login sessions. Enrichment (device label,
// location) is best effort; only the database write can fail a login.
type SessionTracker struct {
	sessionRepo user.SessionRepository
	geo         GeoResolver
	logger      logger.Interface
}

func NewSessionTracker(sessionRepo user.SessionRepository, geo GeoResolver, logger logger.Interface) *SessionTracker {
	return &SessionTracker{
		sessionRepo: sessionRepo,
		geo:         geo,
		logger:      logger,
	}
}

// ClientInfo describes the client opening a session.
type ClientInfo struct {
	IPAddress  string
	UserAgent  string
	DeviceName string
	Location   string
}

// DescribeClient resolves the device label and location for a client. Call it
// before opening a transaction; the geo lookup goes over the network and must
// not hold one open.
func (t *SessionTracker) DescribeClient(ctx context.Context, ipAddress, userAgent string) ClientInfo {
	info := ClientInfo{
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		DeviceName: useragent.DeviceLabel(userAgent),
	}
	if t.geo != nil {
		info.Location = t.geo.Locate(ctx, ipAddress)
	}
	return info
}

// StartSession persists an active session for the user. Inside a transaction
// context the insert joins the transaction, so a failed login attempt leaves
// no session behind.
func (t *SessionTracker) StartSession(ctx context.Context, userID uint, client ClientInfo) (*user.Session, error) {
	session, err := user.NewSession(userID, client.IPAddress, client.UserAgent, client.DeviceName, client.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to build session: %w", err)
	}

	if err := t.sessionRepo.Create(ctx, session); err != nil {
		t.logger.Errorw("failed to persist session", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	t.logger.Infow("session started",
		"user_id", userID,
		"session_id", session.ID,
		"device", client.DeviceName,
		"location", client.Location,
	)
	return session, nil
}
