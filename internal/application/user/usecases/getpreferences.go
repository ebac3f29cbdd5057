package usecases

import (
	"context"
	"encoding/json"

	"sitios/internal/domain/user"
)

// GetPreferencesUseCase returns the caller's preferences as a key/value map.
type GetPreferencesUseCase struct {
	preferenceRepo user.PreferenceRepository
}

func NewGetPreferencesUseCase(preferenceRepo user.PreferenceRepository) *GetPreferencesUseCase {
	return &GetPreferencesUseCase{preferenceRepo: preferenceRepo}
}

func (uc *GetPreferencesUseCase) Execute(ctx context.Context, userID uint) (map[string]json.RawMessage, error) {
	prefs, err := uc.preferenceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make(map[string]json.RawMessage, len(prefs))
	for _, p := range prefs {
		result[p.Key] = p.Value
	}
	return result, nil
}

// GetPreferenceUseCase returns a single preference value by key.
type GetPreferenceUseCase struct {
	preferenceRepo user.PreferenceRepository
}

func NewGetPreferenceUseCase(preferenceRepo user.PreferenceRepository) *GetPreferenceUseCase {
	return &GetPreferenceUseCase{preferenceRepo: preferenceRepo}
}

func (uc *GetPreferenceUseCase) Execute(ctx context.Context, userID uint, key string) (json.RawMessage, error) {
	pref, err := uc.preferenceRepo.Get(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	return pref.Value, nil
}
