package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"car_rental_app_go/config"
	"car_rental_app_go/db"
	"car_rental_app_go/middleware"
	"car_rental_app_go/models"
	"car_rental_app_go/services/searchsync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	require.NoError(t, err)

	// Websocket tests touch the database from the server goroutine too
	sqlDB, err := testDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, testDB.AutoMigrate(&models.Visitor{}, &models.SearchEntry{}))

	// Set global DB
	db.DB = testDB
	return testDB
}

// setupServer builds an echo instance with the public routes and a fixed clock
func setupServer(t *testing.T) (*echo.Echo, *searchsync.Hub) {
	setupTestDB(t)

	previous := now
	now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = previous })

	cfg := &config.Config{
		Environment: "test",
		AppURL:      "http://localhost:8080",
		Timezone:    "UTC",
	}

	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	hub := searchsync.NewGormHub(db.DB)
	RegisterRoutes(e, hub)
	return e, hub
}

func doRequest(e *echo.Echo, method, path string, body io.Reader, cookie *http.Cookie, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// newVisitor makes a first request and returns the visitor cookie it was issued
func newVisitor(t *testing.T, e *echo.Echo) *http.Cookie {
	rec := doRequest(e, http.MethodGet, "/api/search", nil, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.VisitorCookieName {
			return cookie
		}
	}
	t.Fatal("visitor cookie not issued")
	return nil
}
