package services

import (
	"errors"
	"fmt"
	"time"

	"car_rental_app_go/logger"
	"car_rental_app_go/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitorTouchInterval limits how often LastSeenAt is written for a returning visitor
const VisitorTouchInterval = time.Minute

// ResolveVisitor returns the visitor for id, creating a new one when id is
// empty, malformed or unknown. created reports whether a new row was made.
func ResolveVisitor(db *gorm.DB, id, userAgent string) (visitor *models.Visitor, created bool, err error) {
	if _, parseErr := uuid.Parse(id); parseErr == nil {
		var existing models.Visitor
		err := db.Where("id = ?", id).First(&existing).Error
		if err == nil {
			if err := touchVisitor(db, &existing); err != nil {
				return nil, false, err
			}
			return &existing, false, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, fmt.Errorf("failed to load visitor: %w", err)
		}
	}

	visitor = &models.Visitor{
		ID:         uuid.New().String(),
		LastSeenAt: time.Now(),
		UserAgent:  userAgent,
	}
	if err := db.Create(visitor).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create visitor: %w", err)
	}
	return visitor, true, nil
}

func touchVisitor(db *gorm.DB, v *models.Visitor) error {
	now := time.Now()
	if now.Sub(v.LastSeenAt) < VisitorTouchInterval {
		return nil
	}
	if err := db.Model(v).Update("last_seen_at", now).Error; err != nil {
		return fmt.Errorf("failed to update visitor: %w", err)
	}
	return nil
}

// CleanupStaleVisitors removes visitors not seen within retention together with their saved searches
func CleanupStaleVisitors(db *gorm.DB, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	var removed int64

	err := db.Transaction(func(tx *gorm.DB) error {
		stale := tx.Model(&models.Visitor{}).Select("id").Where("last_seen_at < ?", cutoff)

		if err := tx.Where("visitor_id IN (?)", stale).Delete(&models.SearchEntry{}).Error; err != nil {
			return fmt.Errorf("failed to delete stale searches: %w", err)
		}

		result := tx.Where("last_seen_at < ?", cutoff).Delete(&models.Visitor{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete stale visitors: %w", result.Error)
		}
		removed = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	if removed > 0 {
		logger.Infof("Cleaned up %d stale visitors", removed)
	}
	return removed, nil
}
