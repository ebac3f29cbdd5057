package usecases

import (
	"context"

	"sitios/internal/domain/user"
	apperrors "sitios/internal/shared/errors"
	"sitios/internal/shared/logger"
)

type LogoutCommand struct {
	UserID    uint
	SessionID string
}

// LogoutUseCase ends the calling session. Tokens bound to the session stop
// authenticating once it is inactive, which is the only revocation mechanism.
type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.SessionID == "" {
		// Tokens issued without a session have nothing to end
		return nil
	}

	session, err := uc.sessionRepo.GetByID(ctx, cmd.SessionID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil
		}
		return err
	}
	if session.UserID != cmd.UserID {
		return user.ErrSessionNotOwned()
	}

	if err := uc.sessionRepo.End(ctx, cmd.SessionID); err != nil {
		return err
	}

	uc.logger.Infow("user logged out", "user_id", cmd.UserID, "session_id", cmd.SessionID)
	return nil
}
