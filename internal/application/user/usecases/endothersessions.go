package usecases

import (
	"context"

	"sitios/internal/domain/user"
	"sitios/internal/shared/logger"
)

type EndOtherSessionsCommand struct {
	UserID           uint
	CurrentSessionID string
}

// EndOtherSessionsUseCase ends every active session except the calling one.
type EndOtherSessionsUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewEndOtherSessionsUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *EndOtherSessionsUseCase {
	return &EndOtherSessionsUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *EndOtherSessionsUseCase) Execute(ctx context.Context, cmd EndOtherSessionsCommand) error {
	if err := uc.sessionRepo.EndAllExcept(ctx, cmd.UserID, cmd.CurrentSessionID); err != nil {
		return err
	}
	uc.logger.Infow("other sessions ended", "user_id", cmd.UserID, "kept_session_id", cmd.CurrentSessionID)
	return nil
}
