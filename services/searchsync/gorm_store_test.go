package searchsync

import (
	"testing"

	"car_rental_app_go/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, testDB.AutoMigrate(&models.Visitor{}, &models.SearchEntry{}))
	return testDB
}

func TestGormStoreGetMissing(t *testing.T) {
	store := NewGormStore(setupTestDB(t), uuid.New().String())

	value, ok, err := store.Get(KeyFromDate)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestGormStoreSetOverwrites(t *testing.T) {
	testDB := setupTestDB(t)
	visitorID := uuid.New().String()
	store := NewGormStore(testDB, visitorID)

	require.NoError(t, store.Set(Entry{Key: KeyFromDate, Value: "2024-01-01"}))
	require.NoError(t, store.Set(Entry{Key: KeyFromDate, Value: "2024-02-01"}))

	value, ok, err := store.Get(KeyFromDate)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2024-02-01", value)

	var count int64
	testDB.Model(&models.SearchEntry{}).Where("visitor_id = ?", visitorID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGormStoreIsScopedToVisitor(t *testing.T) {
	testDB := setupTestDB(t)
	alice := NewGormStore(testDB, uuid.New().String())
	bob := NewGormStore(testDB, uuid.New().String())

	require.NoError(t, alice.Set(Entry{Key: KeyToDate, Value: "2024-01-09"}))

	_, ok, err := bob.Get(KeyToDate)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestGormStoreServiceRoundTrip(t *testing.T) {
	testDB := setupTestDB(t)
	visitorID := uuid.New().String()
	r := DateRange{From: "2024-01-01", To: "2024-01-03"}

	require.NoError(t, NewService(NewGormStore(testDB, visitorID), NewBus()).Set(r))

	// A fresh service over the same rows observes the last write
	fresh := NewService(NewGormStore(testDB, visitorID), NewBus())
	assert.Equal(t, r, fresh.Get())
	assert.Equal(t, "2", fresh.Persisted().RentalDays)
}
