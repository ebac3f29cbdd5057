package user

import (
	"context"
	"time"
)

// PageView is one recorded page visit by an authenticated user.
type PageView struct {
	ID        uint
	UserID    uint
	Path      string
	Timestamp time.Time
}

// SearchQuery is one recorded search by an authenticated user.
type SearchQuery struct {
	ID        uint
	UserID    uint
	Query     string
	Timestamp time.Time
}

// ActivityRepository records user activity. Writes are best-effort from the
// caller's point of view; a failed insert must never fail the request.
type ActivityRepository interface {
	RecordPageView(ctx context.Context, view *PageView) error
	RecordSearch(ctx context.Context, search *SearchQuery) error
	CountPageViewsByUser(ctx context.Context, userID uint) (int64, error)
	DeleteByUser(ctx context.Context, userID uint) error
}
