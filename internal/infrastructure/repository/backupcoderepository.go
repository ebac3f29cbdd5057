package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sitios/internal/domain/user"
	"sitios/internal/infrastructure/persistence/models"
	"sitios/internal/shared/db"
)

type BackupCodeRepository struct {
	db *gorm.DB
}

func NewBackupCodeRepository(gormDB *gorm.DB) user.BackupCodeRepository {
	return &BackupCodeRepository{db: gormDB}
}

func (r *BackupCodeRepository) ReplaceForUser(ctx context.Context, userID uint, codes []string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).Delete(&models.BackupCodeModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear previous backup codes: %w", err)
	}

	batch := make([]models.BackupCodeModel, 0, len(codes))
	for _, code := range codes {
		batch = append(batch, models.BackupCodeModel{
			UserID: userID,
			Code:   code,
		})
	}
	if err := tx.Create(&batch).Error; err != nil {
		return fmt.Errorf("failed to store backup codes: %w", err)
	}
	return nil
}

// Consume marks the matching unused code as used in a single guarded UPDATE.
// Two concurrent redemptions of the same code cannot both see RowsAffected=1.
func (r *BackupCodeRepository) Consume(ctx context.Context, userID uint, code string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.BackupCodeModel{}).
		Where("user_id = ? AND code = ? AND used = ?", userID, code, false).
		Update("used", true)
	if result.Error != nil {
		return false, fmt.Errorf("failed to consume backup code: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *BackupCodeRepository) DeleteForUser(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id = ?", userID).Delete(&models.BackupCodeModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete backup codes: %w", err)
	}
	return nil
}

func (r *BackupCodeRepository) CountUnused(ctx context.Context, userID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.BackupCodeModel{}).
		Where("user_id = ? AND used = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unused backup codes: %w", err)
	}
	return count, nil
}
