package searchsync

import (
	"errors"
	"fmt"

	"car_rental_app_go/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists a visitor's search entries in the search_entries table
type GormStore struct {
	db        *gorm.DB
	visitorID string
}

// NewGormStore creates a store scoped to visitorID
func NewGormStore(db *gorm.DB, visitorID string) *GormStore {
	return &GormStore{db: db, visitorID: visitorID}
}

func (s *GormStore) Get(key string) (string, bool, error) {
	var entry models.SearchEntry
	err := s.db.Where("visitor_id = ? AND search_key = ?", s.visitorID, key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read search entry %s: %w", key, err)
	}
	return entry.Value, true, nil
}

// Set upserts all entries in a single transaction
func (s *GormStore) Set(entries ...Entry) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, e := range entries {
			row := models.SearchEntry{
				VisitorID: s.visitorID,
				Key:       e.Key,
				Value:     e.Value,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "visitor_id"}, {Name: "search_key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("failed to write search entry %s: %w", e.Key, err)
			}
		}
		return nil
	})
}
