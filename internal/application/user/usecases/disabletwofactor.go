package usecases

import (
	"context"

	"sitios/internal/domain/user"
	"sitios/internal/shared/db"
	apperrors "sitios/internal/shared/errors"
	"sitios/internal/shared/logger"
)

type DisableTwoFactorCommand struct {
	UserID   uint
	Password string
}

// DisableTwoFactorUseCase turns off the second factor after re-checking the
// password. The secret and the backup codes are wiped in one transaction.
type DisableTwoFactorUseCase struct {
	userRepo       user.Repository
	backupCodeRepo user.BackupCodeRepository
	passwordHasher user.PasswordHasher
	txManager      *db.TransactionManager
	logger         logger.Interface
}

func NewDisableTwoFactorUseCase(
	userRepo user.Repository,
	backupCodeRepo user.BackupCodeRepository,
	hasher user.PasswordHasher,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *DisableTwoFactorUseCase {
	return &DisableTwoFactorUseCase{
		userRepo:       userRepo,
		backupCodeRepo: backupCodeRepo,
		passwordHasher: hasher,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *DisableTwoFactorUseCase) Execute(ctx context.Context, cmd DisableTwoFactorCommand) error {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if !u.TwoFactorEnabled() {
		return user.ErrTwoFactorNotConfigured()
	}

	if err := u.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Warnw("two-factor disable rejected", "user_id", cmd.UserID)
		return apperrors.NewInvalidCredentialsError()
	}

	u.DisableTwoFactor()

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Update(txCtx, u); err != nil {
			return err
		}
		return uc.backupCodeRepo.DeleteForUser(txCtx, cmd.UserID)
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("two-factor disabled", "user_id", cmd.UserID)
	return nil
}
