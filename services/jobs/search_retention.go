package jobs

import (
	"fmt"
	"time"

	"car_rental_app_go/logger"
	"car_rental_app_go/services"
	"car_rental_app_go/services/searchsync"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// RetentionConfig controls the saved-search retention job
type RetentionConfig struct {
	Schedule  string         // cron spec, e.g. "0 3 * * *"
	Retention time.Duration  // visitors idle longer than this are removed
	Location  *time.Location // schedule timezone, UTC when nil
}

// StartScheduler registers the retention job and starts the scheduler.
// The caller stops the returned cron on shutdown.
func StartScheduler(database *gorm.DB, hub *searchsync.Hub, cfg RetentionConfig) (*cron.Cron, error) {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	_, err := c.AddFunc(cfg.Schedule, func() {
		logger.Info("[CRON] Running saved search retention")
		RunSearchRetention(database, hub, cfg.Retention)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule retention job: %w", err)
	}

	c.Start()
	logger.Infof("[CRON] Scheduler started (retention %s, schedule %q)", cfg.Retention, cfg.Schedule)
	return c, nil
}

// RunSearchRetention deletes stale visitors with their searches and drops idle notification buses
func RunSearchRetention(database *gorm.DB, hub *searchsync.Hub, retention time.Duration) {
	removed, err := services.CleanupStaleVisitors(database, retention)
	if err != nil {
		logger.WithError(err).Error("[JOB] Saved search retention failed")
		return
	}

	pruned := 0
	if hub != nil {
		pruned = hub.Prune()
	}

	logger.WithFields(logger.Fields{
		"visitors_removed": removed,
		"buses_pruned":     pruned,
	}).Info("[JOB] Saved search retention finished")
}
