package usecases

import (
	"context"
	"fmt"

	"sitios/internal/application/user/services"
	"sitios/internal/domain/user"
	"sitios/internal/shared/db"
	apperrors "sitios/internal/shared/errors"
	"sitios/internal/shared/logger"
)

type LoginWithPasswordCommand struct {
	Email         string
	Password      string
	TwoFactorCode string
	IPAddress     string
	UserAgent     string
}

type LoginWithPasswordResult struct {
	User      *user.User
	Session   *user.Session
	Token     string
	ExpiresIn int64

	// RequiresTwoFactor signals a passed password check on a protected
	// account with no code submitted yet. No session or token exists.
	RequiresTwoFactor bool
	UsedBackupCode    bool
}

// LoginWithPasswordUseCase authenticates with email and password, challenges
// for a second factor when the account has one, and opens a session.
type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	backupCodeRepo user.BackupCodeRepository
	passwordHasher user.PasswordHasher
	tokenIssuer    TokenIssuer
	twoFactor      TwoFactorService
	sessionTracker *services.SessionTracker
	txManager      *db.TransactionManager
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	backupCodeRepo user.BackupCodeRepository,
	hasher user.PasswordHasher,
	tokenIssuer TokenIssuer,
	twoFactor TwoFactorService,
	sessionTracker *services.SessionTracker,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		backupCodeRepo: backupCodeRepo,
		passwordHasher: hasher,
		tokenIssuer:    tokenIssuer,
		twoFactor:      twoFactor,
		sessionTracker: sessionTracker,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*LoginWithPasswordResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		// Unknown email and wrong password must be indistinguishable
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", existingUser.ID(), "ip", cmd.IPAddress)
		return nil, apperrors.NewInvalidCredentialsError()
	}

	if existingUser.TwoFactorEnabled() && cmd.TwoFactorCode == "" {
		return &LoginWithPasswordResult{
			User:              existingUser,
			RequiresTwoFactor: true,
		}, nil
	}

	client := uc.sessionTracker.DescribeClient(ctx, cmd.IPAddress, cmd.UserAgent)

	// Consuming a backup code and opening the session share a transaction, so
	// a failed session insert does not burn a single-use code.
	usedBackupCode := false
	var session *user.Session
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if existingUser.TwoFactorEnabled() {
			usedBackupCode, err = uc.verifySecondFactor(txCtx, existingUser, cmd.TwoFactorCode)
			if err != nil {
				return err
			}
		}
		session, err = uc.sessionTracker.StartSession(txCtx, existingUser.ID(), client)
		return err
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.tokenIssuer.Issue(existingUser.ID(), session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user logged in",
		"user_id", existingUser.ID(),
		"session_id", session.ID,
		"two_factor", existingUser.TwoFactorEnabled(),
		"backup_code", usedBackupCode,
	)

	return &LoginWithPasswordResult{
		User:           existingUser,
		Session:        session,
		Token:          token,
		ExpiresIn:      int64(uc.tokenIssuer.ExpMinutes()) * 60,
		UsedBackupCode: usedBackupCode,
	}, nil
}

// verifySecondFactor accepts either a current TOTP code or an unused backup
// code. Backup codes burn on use even though the TOTP check ran first.
func (uc *LoginWithPasswordUseCase) verifySecondFactor(ctx context.Context, u *user.User, code string) (bool, error) {
	secret := u.TwoFactorSecret()
	if secret == nil {
		return false, user.ErrTwoFactorNotConfigured()
	}

	if uc.twoFactor.Validate(code, *secret) {
		return false, nil
	}

	consumed, err := uc.backupCodeRepo.Consume(ctx, u.ID(), code)
	if err != nil {
		return false, fmt.Errorf("failed to check backup code: %w", err)
	}
	if !consumed {
		uc.logger.Warnw("invalid two-factor code", "user_id", u.ID())
		return false, apperrors.NewUnauthorizedError("Invalid two-factor code")
	}

	remaining, err := uc.backupCodeRepo.CountUnused(ctx, u.ID())
	if err == nil && remaining <= 2 {
		uc.logger.Warnw("backup codes running low", "user_id", u.ID(), "remaining", remaining)
	}
	return true, nil
}
