package usecases

import (
	"context"

	"sitios/internal/domain/user"
	"sitios/internal/shared/logger"
)

type BeginTwoFactorSetupResult struct {
	Secret       string
	OtpauthURL   string
	QRCodeBase64 string
}

// BeginTwoFactorSetupUseCase generates a shared secret and stages it on the
// account. The account stays unprotected until the secret is confirmed;
// calling again before confirmation replaces the pending secret.
type BeginTwoFactorSetupUseCase struct {
	userRepo  user.Repository
	twoFactor TwoFactorService
	logger    logger.Interface
}

func NewBeginTwoFactorSetupUseCase(
	userRepo user.Repository,
	twoFactor TwoFactorService,
	logger logger.Interface,
) *BeginTwoFactorSetupUseCase {
	return &BeginTwoFactorSetupUseCase{
		userRepo:  userRepo,
		twoFactor: twoFactor,
		logger:    logger,
	}
}

func (uc *BeginTwoFactorSetupUseCase) Execute(ctx context.Context, userID uint) (*BeginTwoFactorSetupResult, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.TwoFactorEnabled() {
		return nil, user.ErrTwoFactorAlreadyEnabled()
	}

	key, err := uc.twoFactor.GenerateKey(u.Email().String())
	if err != nil {
		return nil, err
	}

	if err := u.StageTwoFactorSecret(key.Secret); err != nil {
		return nil, err
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.logger.Infow("two-factor setup started", "user_id", userID)

	return &BeginTwoFactorSetupResult{
		Secret:       key.Secret,
		OtpauthURL:   key.OtpauthURL,
		QRCodeBase64: key.QRCodeBase64,
	}, nil
}
