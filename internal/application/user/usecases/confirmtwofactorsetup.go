package usecases

import (
	"context"

	"sitios/internal/domain/user"
	"sitios/internal/shared/db"
	"sitios/internal/shared/logger"
)

type ConfirmTwoFactorSetupCommand struct {
	UserID uint
	Code   string
}

type ConfirmTwoFactorSetupResult struct {
	BackupCodes []string
}

// ConfirmTwoFactorSetupUseCase verifies the first code against the staged
// secret, flips the enabled flag and issues the backup code batch. The flag
// and the batch commit atomically so a protected account always has its
// recovery codes.
type ConfirmTwoFactorSetupUseCase struct {
	userRepo       user.Repository
	backupCodeRepo user.BackupCodeRepository
	twoFactor      TwoFactorService
	txManager      *db.TransactionManager
	logger         logger.Interface
}

func NewConfirmTwoFactorSetupUseCase(
	userRepo user.Repository,
	backupCodeRepo user.BackupCodeRepository,
	twoFactor TwoFactorService,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *ConfirmTwoFactorSetupUseCase {
	return &ConfirmTwoFactorSetupUseCase{
		userRepo:       userRepo,
		backupCodeRepo: backupCodeRepo,
		twoFactor:      twoFactor,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *ConfirmTwoFactorSetupUseCase) Execute(ctx context.Context, cmd ConfirmTwoFactorSetupCommand) (*ConfirmTwoFactorSetupResult, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if u.TwoFactorEnabled() {
		return nil, user.ErrTwoFactorAlreadyEnabled()
	}

	secret := u.TwoFactorSecret()
	if secret == nil {
		return nil, user.ErrTwoFactorNotConfigured()
	}

	if !uc.twoFactor.Validate(cmd.Code, *secret) {
		uc.logger.Warnw("two-factor confirmation failed", "user_id", cmd.UserID)
		return nil, user.ErrInvalidTwoFactorCode()
	}

	if err := u.ConfirmTwoFactor(); err != nil {
		return nil, err
	}

	codes, err := user.GenerateBackupCodes()
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Update(txCtx, u); err != nil {
			return err
		}
		return uc.backupCodeRepo.ReplaceForUser(txCtx, cmd.UserID, codes)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("two-factor enabled", "user_id", cmd.UserID)

	return &ConfirmTwoFactorSetupResult{BackupCodes: codes}, nil
}
