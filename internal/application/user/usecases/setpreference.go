package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"sitios/internal/domain/user"
	apperrors "sitios/internal/shared/errors"
)

const maxPreferenceValueBytes = 8 << 10

type SetPreferenceCommand struct {
	UserID uint
	Key    string
	Value  json.RawMessage
}

// SetPreferenceUseCase creates or replaces one preference.
type SetPreferenceUseCase struct {
	preferenceRepo user.PreferenceRepository
}

func NewSetPreferenceUseCase(preferenceRepo user.PreferenceRepository) *SetPreferenceUseCase {
	return &SetPreferenceUseCase{preferenceRepo: preferenceRepo}
}

func (uc *SetPreferenceUseCase) Execute(ctx context.Context, cmd SetPreferenceCommand) error {
	if cmd.Key == "" || len(cmd.Key) > 100 {
		return apperrors.NewValidationError("Preference key must be between 1 and 100 characters")
	}
	if len(cmd.Value) == 0 {
		return apperrors.NewValidationError("Preference value is required")
	}
	if len(cmd.Value) > maxPreferenceValueBytes {
		return apperrors.NewValidationError(fmt.Sprintf("Preference value exceeds %d bytes", maxPreferenceValueBytes))
	}
	if !json.Valid(cmd.Value) {
		return apperrors.NewValidationError("Preference value must be valid JSON")
	}

	return uc.preferenceRepo.Upsert(ctx, cmd.UserID, cmd.Key, cmd.Value)
}
