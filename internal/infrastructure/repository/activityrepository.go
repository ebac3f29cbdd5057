package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sitios/internal/domain/user"
	"sitios/internal/infrastructure/persistence/models"
	"sitios/internal/shared/db"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(gormDB *gorm.DB) user.ActivityRepository {
	return &ActivityRepository{db: gormDB}
}

func (r *ActivityRepository) RecordPageView(ctx context.Context, view *user.PageView) error {
	model := models.PageViewModel{
		UserID:    view.UserID,
		Path:      view.Path,
		Timestamp: view.Timestamp,
	}
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&model).Error; err != nil {
		return fmt.Errorf("failed to record page view: %w", err)
	}
	return nil
}

func (r *ActivityRepository) RecordSearch(ctx context.Context, search *user.SearchQuery) error {
	model := models.SearchQueryModel{
		UserID:    search.UserID,
		Query:     search.Query,
		Timestamp: search.Timestamp,
	}
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&model).Error; err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

func (r *ActivityRepository) CountPageViewsByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.PageViewModel{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count page views: %w", err)
	}
	return count, nil
}

func (r *ActivityRepository) DeleteByUser(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id = ?", userID).Delete(&models.PageViewModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete page views: %w", err)
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.SearchQueryModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete search queries: %w", err)
	}
	return nil
}
