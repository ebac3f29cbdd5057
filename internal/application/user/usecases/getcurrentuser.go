package usecases

import (
	"context"

	"sitios/internal/domain/user"
)

type GetCurrentUserResult struct {
	User             *user.User
	TwoFactorEnabled bool
}

// GetCurrentUserUseCase returns the authenticated user's sanitized profile.
type GetCurrentUserUseCase struct {
	userRepo user.Repository
}

func NewGetCurrentUserUseCase(userRepo user.Repository) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, userID uint) (*GetCurrentUserResult, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &GetCurrentUserResult{
		User:             u,
		TwoFactorEnabled: u.TwoFactorEnabled(),
	}, nil
}
