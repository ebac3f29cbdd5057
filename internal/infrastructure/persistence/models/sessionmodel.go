package models

import "time"

// SessionModel represents the database persistence model for login sessions.
// The primary key is the random session identifier carried inside the JWT.
type SessionModel struct {
	ID             string `gorm:"primarykey;size:64"`
	UserID         uint   `gorm:"not null;index:idx_sessions_user_id"`
	IPAddress      string `gorm:"size:45"`
	UserAgent      string `gorm:"size:512"`
	DeviceName     string `gorm:"size:100"`
	Location       string `gorm:"size:100"`
	StartedAt      time.Time
	LastActivityAt time.Time `gorm:"index:idx_sessions_last_activity"`
	EndedAt        *time.Time
	Active         bool `gorm:"not null;default:true;index:idx_sessions_active"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}
