package models

import (
	"time"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID               uint    `gorm:"primarykey"`
	Email            string  `gorm:"uniqueIndex;not null;size:255"`
	Name             string  `gorm:"not null;size:100"`
	Role             string  `gorm:"not null;default:USER;size:20"`
	PasswordHash     string  `gorm:"not null;size:255"`
	TwoFactorSecret  *string `gorm:"size:255"`
	TwoFactorEnabled bool    `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}
