package models

import "time"

// PageViewModel represents the database persistence model for page views.
type PageViewModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index:idx_page_views_user_id"`
	Path      string `gorm:"not null;size:512"`
	Timestamp time.Time
}

// TableName specifies the table name for GORM
func (PageViewModel) TableName() string {
	return "page_views"
}

// SearchQueryModel represents the database persistence model for searches.
type SearchQueryModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index:idx_search_queries_user_id"`
	Query     string `gorm:"column:search_query;not null;size:255"`
	Timestamp time.Time
}

// TableName specifies the table name for GORM
func (SearchQueryModel) TableName() string {
	return "search_queries"
}
