package usecases

import (
	"context"

	"sitios/internal/domain/user"
	vo "sitios/internal/domain/user/valueobjects"
	"sitios/internal/shared/logger"
)

type UpdateProfileCommand struct {
	UserID uint
	Name   string
}

// UpdateProfileUseCase changes the display name.
type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*user.User, error) {
	name, err := vo.NewName(cmd.Name)
	if err != nil {
		return nil, err
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := u.Rename(name); err != nil {
		return nil, err
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.logger.Infow("profile updated", "user_id", cmd.UserID)
	return u, nil
}
