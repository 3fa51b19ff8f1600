package jobs

import (
	"testing"
	"time"

	"car_rental_app_go/models"
	"car_rental_app_go/services/searchsync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRetentionTestDB(t *testing.T) *gorm.DB {
	testDSN := "file:retention_" + uuid.New().String() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(testDSN), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Visitor{}, &models.SearchEntry{}))
	return db
}

func TestRunSearchRetention(t *testing.T) {
	db := setupRetentionTestDB(t)
	hub := searchsync.NewGormHub(db)

	stale := models.Visitor{ID: uuid.New().String(), LastSeenAt: time.Now().Add(-10 * 24 * time.Hour)}
	active := models.Visitor{ID: uuid.New().String(), LastSeenAt: time.Now()}
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Create(&active).Error)

	require.NoError(t, hub.Service(stale.ID).Set(searchsync.DateRange{From: "2024-01-01", To: "2024-01-02"}))
	require.NoError(t, hub.Service(active.ID).Set(searchsync.DateRange{From: "2024-01-01", To: "2024-01-02"}))

	// The stale visitor's bus is released on unsubscribe, the active one stays live
	hub.Service(stale.ID).Subscribe(func(searchsync.Message) {})()
	hub.Service(active.ID).Subscribe(func(searchsync.Message) {})

	RunSearchRetention(db, hub, 7*24*time.Hour)

	assert.True(t, hub.Service(stale.ID).Get().IsEmpty())
	assert.Equal(t, searchsync.DateRange{From: "2024-01-01", To: "2024-01-02"}, hub.Service(active.ID).Get())
	assert.Equal(t, 1, hub.Subscribers(active.ID))
	assert.Equal(t, 0, hub.Prune())
}

func TestStartScheduler(t *testing.T) {
	db := setupRetentionTestDB(t)

	c, err := StartScheduler(db, nil, RetentionConfig{Schedule: "0 3 * * *", Retention: time.Hour})
	require.NoError(t, err)
	defer c.Stop()
	assert.Len(t, c.Entries(), 1)

	_, err = StartScheduler(db, nil, RetentionConfig{Schedule: "every so often", Retention: time.Hour})
	assert.Error(t, err)
}
