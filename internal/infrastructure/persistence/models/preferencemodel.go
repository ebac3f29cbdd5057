package models

import (
	"time"

	"gorm.io/datatypes"
)

// PreferenceModel represents the database persistence model for user
// preferences. Values are stored as JSON so clients can keep structured
// settings under a single key.
type PreferenceModel struct {
	ID        uint           `gorm:"primarykey"`
	UserID    uint           `gorm:"not null;index:idx_preferences_user_key,unique"`
	Key       string         `gorm:"column:pref_key;not null;size:100;index:idx_preferences_user_key,unique"`
	Value     datatypes.JSON `gorm:"column:pref_value"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (PreferenceModel) TableName() string {
	return "user_preferences"
}
