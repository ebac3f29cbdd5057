package usecases

import (
	"context"

	"sitios/internal/domain/user"
	vo "sitios/internal/domain/user/valueobjects"
	apperrors "sitios/internal/shared/errors"
	"sitios/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID           uint
	CurrentPassword  string
	NewPassword      string
	CurrentSessionID string
}

// ChangePasswordUseCase replaces the password after verifying the current
// one, then ends every other session so stolen tokens die with the old
// password.
type ChangePasswordUseCase struct {
	userRepo       user.Repository
	sessionRepo    user.SessionRepository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	newPassword, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return err
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	if err := u.VerifyPassword(cmd.CurrentPassword, uc.passwordHasher); err != nil {
		uc.logger.Warnw("password change rejected", "user_id", cmd.UserID)
		return apperrors.NewInvalidCredentialsError()
	}

	if err := u.SetPassword(newPassword, uc.passwordHasher); err != nil {
		return err
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return err
	}

	if err := uc.sessionRepo.EndAllExcept(ctx, cmd.UserID, cmd.CurrentSessionID); err != nil {
		uc.logger.Errorw("failed to end other sessions after password change", "user_id", cmd.UserID, "error", err)
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserID)
	return nil
}
