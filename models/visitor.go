package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Visitor is an anonymous browser identified by the visitor cookie.
// It scopes persisted searches the way a browser origin scopes local storage.
type Visitor struct {
	ID         string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `gorm:"not null;index" json:"last_seen_at"`
	UserAgent  string    `gorm:"type:text" json:"user_agent"`
}

// BeforeCreate hook to generate UUID
func (v *Visitor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	if v.LastSeenAt.IsZero() {
		v.LastSeenAt = time.Now()
	}
	return nil
}

// TableName specifies the table name for Visitor model
func (Visitor) TableName() string {
	return "visitors"
}

// IsStale checks if the visitor has not been seen within the retention window
func (v *Visitor) IsStale(retention time.Duration) bool {
	return time.Since(v.LastSeenAt) > retention
}
