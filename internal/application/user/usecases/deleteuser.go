package usecases

import (
	"context"

	"sitios/internal/domain/user"
	"sitios/internal/shared/db"
	apperrors "sitios/internal/shared/errors"
	"sitios/internal/shared/logger"
)

type DeleteUserCommand struct {
	ActorID  uint
	TargetID uint
}

// DeleteUserUseCase removes an account and everything hanging off it:
// sessions, backup codes, preferences and activity, all in one transaction.
// Admins cannot delete themselves; that would orphan the calling session
// mid-request.
type DeleteUserUseCase struct {
	userRepo       user.Repository
	sessionRepo    user.SessionRepository
	backupCodeRepo user.BackupCodeRepository
	preferenceRepo user.PreferenceRepository
	activityRepo   user.ActivityRepository
	txManager      *db.TransactionManager
	logger         logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	backupCodeRepo user.BackupCodeRepository,
	preferenceRepo user.PreferenceRepository,
	activityRepo user.ActivityRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		backupCodeRepo: backupCodeRepo,
		preferenceRepo: preferenceRepo,
		activityRepo:   activityRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.ActorID == cmd.TargetID {
		return apperrors.NewBadRequestError("Cannot delete your own account")
	}

	if _, err := uc.userRepo.GetByID(ctx, cmd.TargetID); err != nil {
		return err
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.sessionRepo.DeleteByUser(txCtx, cmd.TargetID); err != nil {
			return err
		}
		if err := uc.backupCodeRepo.DeleteForUser(txCtx, cmd.TargetID); err != nil {
			return err
		}
		if err := uc.preferenceRepo.DeleteAllForUser(txCtx, cmd.TargetID); err != nil {
			return err
		}
		if err := uc.activityRepo.DeleteByUser(txCtx, cmd.TargetID); err != nil {
			return err
		}
		return uc.userRepo.Delete(txCtx, cmd.TargetID)
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("user deleted", "actor_id", cmd.ActorID, "target_id", cmd.TargetID)
	return nil
}
