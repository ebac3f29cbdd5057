package models

import "time"

// BackupCodeModel represents the database persistence model for two-factor
// recovery codes. A (user_id, code) pair is unique within a batch.
type BackupCodeModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index:idx_backup_codes_user_code,unique"`
	Code      string `gorm:"not null;size:16;index:idx_backup_codes_user_code,unique"`
	Used      bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (BackupCodeModel) TableName() string {
	return "backup_codes"
}
