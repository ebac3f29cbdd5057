package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sitios/internal/domain/user"
	"sitios/internal/infrastructure/persistence/models"
	"sitios/internal/shared/db"
	apperrors "sitios/internal/shared/errors"
)

type PreferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(gormDB *gorm.DB) user.PreferenceRepository {
	return &PreferenceRepository{db: gormDB}
}

func (r *PreferenceRepository) ListByUser(ctx context.Context, userID uint) ([]*user.Preference, error) {
	var prefModels []models.PreferenceModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("user_id = ?", userID).Order("pref_key ASC").Find(&prefModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}

	prefs := make([]*user.Preference, len(prefModels))
	for i := range prefModels {
		prefs[i] = toPreference(&prefModels[i])
	}
	return prefs, nil
}

func (r *PreferenceRepository) Get(ctx context.Context, userID uint, key string) (*user.Preference, error) {
	var model models.PreferenceModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("user_id = ? AND pref_key = ?", userID, key).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Preference not found")
		}
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	return toPreference(&model), nil
}

func (r *PreferenceRepository) Upsert(ctx context.Context, userID uint, key string, value json.RawMessage) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := models.PreferenceModel{
		UserID: userID,
		Key:    key,
		Value:  datatypes.JSON(value),
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "pref_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"pref_value", "updated_at"}),
	}).Create(&model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert preference: %w", err)
	}
	return nil
}

func (r *PreferenceRepository) Delete(ctx context.Context, userID uint, key string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("user_id = ? AND pref_key = ?", userID, key).Delete(&models.PreferenceModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete preference: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Preference not found")
	}
	return nil
}

func (r *PreferenceRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id = ?", userID).Delete(&models.PreferenceModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete preferences: %w", err)
	}
	return nil
}

func (r *PreferenceRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.PreferenceModel{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count preferences: %w", err)
	}
	return count, nil
}

func toPreference(model *models.PreferenceModel) *user.Preference {
	return &user.Preference{
		ID:     model.ID,
		UserID: model.UserID,
		Key:    model.Key,
		Value:  json.RawMessage(model.Value),
	}
}
