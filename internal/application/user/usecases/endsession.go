package usecases

import (
	"context"

	"sitios/internal/domain/user"
	"sitios/internal/shared/logger"
)

type EndSessionCommand struct {
	UserID    uint
	SessionID string
}

// EndSessionUseCase ends one of the caller's sessions. Targeting a session
// that belongs to someone else is a forbidden error, not a not-found, so the
// caller learns the session exists but nothing more.
type EndSessionUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewEndSessionUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *EndSessionUseCase {
	return &EndSessionUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *EndSessionUseCase) Execute(ctx context.Context, cmd EndSessionCommand) error {
	session, err := uc.sessionRepo.GetByID(ctx, cmd.SessionID)
	if err != nil {
		return err
	}
	if session.UserID != cmd.UserID {
		uc.logger.Warnw("session end denied", "user_id", cmd.UserID, "session_id", cmd.SessionID)
		return user.ErrSessionNotOwned()
	}

	if err := uc.sessionRepo.End(ctx, cmd.SessionID); err != nil {
		return err
	}

	uc.logger.Infow("session ended", "user_id", cmd.UserID, "session_id", cmd.SessionID)
	return nil
}
