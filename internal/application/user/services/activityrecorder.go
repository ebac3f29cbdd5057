package services

import (
	"context"

	"sitios/internal/domain/user"
	"sitios/internal/shared/biztime"
	"sitios/internal/shared/logger"
)

// ActivityRecorder writes page view and search records. Failures are logged
// and swallowed; activity is telemetry, not business state.
type ActivityRecorder struct {
	activityRepo user.ActivityRepository
	logger       logger.Interface
}

func NewActivityRecorder(activityRepo user.ActivityRepository, logger logger.Interface) *ActivityRecorder {
	return &ActivityRecorder{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (r *ActivityRecorder) RecordPageView(ctx context.Context, userID uint, path string) {
	view := &user.PageView{
		UserID:    userID,
		Path:      path,
		Timestamp: biztime.NowUTC(),
	}
	if err := r.activityRepo.RecordPageView(ctx, view); err != nil {
		r.logger.Warnw("failed to record page view", "user_id", userID, "error", err)
	}
}

func (r *ActivityRecorder) RecordSearch(ctx context.Context, userID uint, query string) {
	if query == "" {
		return
	}
	search := &user.SearchQuery{
		UserID:    userID,
		Query:     query,
		Timestamp: biztime.NowUTC(),
	}
	if err := r.activityRepo.RecordSearch(ctx, search); err != nil {
		r.logger.Warnw("failed to record search", "user_id", userID, "error", err)
	}
}
