package usecases

import (
	"context"

	"sitios/internal/domain/user"
	"sitios/internal/shared/biztime"
)

type SessionInfo struct {
	ID             string `json:"id"`
	DeviceName     string `json:"device_name"`
	Location       string `json:"location"`
	IPAddress      string `json:"ip_address"`
	StartedAt      string `json:"started_at"`
	LastActivityAt string `json:"last_activity_at"`
	Current        bool   `json:"current"`
}

// ListSessionsUseCase returns the caller's active sessions, most recently
// active first, flagging the one behind the current request.
type ListSessionsUseCase struct {
	sessionRepo user.SessionRepository
}

func NewListSessionsUseCase(sessionRepo user.SessionRepository) *ListSessionsUseCase {
	return &ListSessionsUseCase{sessionRepo: sessionRepo}
}

func (uc *ListSessionsUseCase) Execute(ctx context.Context, userID uint, currentSessionID string) ([]SessionInfo, error) {
	sessions, err := uc.sessionRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	infos := make([]SessionInfo, 0, len(sessions))
	for _, s := range sessions {
		infos = append(infos, SessionInfo{
			ID:             s.ID,
			DeviceName:     s.DeviceName,
			Location:       s.Location,
			IPAddress:      s.IPAddress,
			StartedAt:      biztime.FormatRFC3339(s.StartedAt),
			LastActivityAt: biztime.FormatRFC3339(s.LastActivityAt),
			Current:        s.ID == currentSessionID,
		})
	}
	return infos, nil
}
