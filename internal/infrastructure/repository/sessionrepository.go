package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sitios/internal/domain/user"
	"sitios/internal/infrastructure/persistence/mappers"
	"sitios/internal/infrastructure/persistence/models"
	"sitios/internal/shared/biztime"
	"sitios/internal/shared/db"
)

type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
}

func NewSessionRepository(gormDB *gorm.DB) user.SessionRepository {
	return &SessionRepository{
		db:     gormDB,
		mapper: mappers.NewSessionMapper(),
	}
}

func (r *SessionRepository) Create(ctx context.Context, session *user.Session) error {
	model := r.mapper.ToModel(session)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	var model models.SessionModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id = ?", sessionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrSessionNotFound()
		}
		return nil, fmt.Errorf("failed to get session by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *SessionRepository) ListActiveByUser(ctx context.Context, userID uint) ([]*user.Session, error) {
	var sessionModels []models.SessionModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("user_id = ? AND active = ?", userID, true).
		Order("last_activity_at DESC").
		Find(&sessionModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}

	sessions := make([]*user.Session, len(sessionModels))
	for i := range sessionModels {
		sessions[i] = r.mapper.ToDomain(&sessionModels[i])
	}
	return sessions, nil
}

func (r *SessionRepository) UpdateActivity(ctx context.Context, sessionID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.SessionModel{}).
		Where("id = ? AND active = ?", sessionID, true).
		Update("last_activity_at", biztime.NowUTC())
	if result.Error != nil {
		return fmt.Errorf("failed to update session activity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrSessionNotFound()
	}
	return nil
}

func (r *SessionRepository) End(ctx context.Context, sessionID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.SessionModel{}).
		Where("id = ? AND active = ?", sessionID, true).
		Updates(map[string]any{
			"active":   false,
			"ended_at": biztime.NowUTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to end session: %w", result.Error)
	}
	// Already-ended sessions are fine; End is idempotent
	return nil
}

func (r *SessionRepository) EndAllExcept(ctx context.Context, userID uint, exceptSessionID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Model(&models.SessionModel{}).
		Where("user_id = ? AND active = ? AND id <> ?", userID, true, exceptSessionID).
		Updates(map[string]any{
			"active":   false,
			"ended_at": biztime.NowUTC(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to end other sessions: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteByUser(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id = ?", userID).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete sessions by user: %w", err)
	}
	return nil
}
