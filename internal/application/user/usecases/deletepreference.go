package usecases

import (
	"context"

	"sitios/internal/domain/user"
)

type DeletePreferenceCommand struct {
	UserID uint
	Key    string
}

// DeletePreferenceUseCase removes one preference by key.
type DeletePreferenceUseCase struct {
	preferenceRepo user.PreferenceRepository
}

func NewDeletePreferenceUseCase(preferenceRepo user.PreferenceRepository) *DeletePreferenceUseCase {
	return &DeletePreferenceUseCase{preferenceRepo: preferenceRepo}
}

func (uc *DeletePreferenceUseCase) Execute(ctx context.Context, cmd DeletePreferenceCommand) error {
	return uc.preferenceRepo.Delete(ctx, cmd.UserID, cmd.Key)
}

// DeleteAllPreferencesUseCase wipes every preference the caller has stored.
type DeleteAllPreferencesUseCase struct {
	preferenceRepo user.PreferenceRepository
}

func NewDeleteAllPreferencesUseCase(preferenceRepo user.PreferenceRepository) *DeleteAllPreferencesUseCase {
	return &DeleteAllPreferencesUseCase{preferenceRepo: preferenceRepo}
}

func (uc *DeleteAllPreferencesUseCase) Execute(ctx context.Context, userID uint) error {
	return uc.preferenceRepo.DeleteAllForUser(ctx, userID)
}
