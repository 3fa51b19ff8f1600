package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchEntry is one key of a visitor's persisted search (searchFromDate, searchToDate, rentalDays)
type SearchEntry struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	VisitorID string `gorm:"type:uuid;not null;uniqueIndex:idx_search_entry_visitor_key" json:"visitor_id"`
	Key       string `gorm:"column:search_key;type:varchar(64);not null;uniqueIndex:idx_search_entry_visitor_key" json:"key"`
	Value     string `gorm:"type:varchar(64);not null" json:"value"`
}

// BeforeCreate hook to generate UUID
func (e *SearchEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for SearchEntry model
func (SearchEntry) TableName() string {
	return "search_entries"
}
