package handlers

import (
	"net/http"

	"car_rental_app_go/db"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports whether the server and database are reachable
func HealthHandler(c echo.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil || sqlDB.PingContext(c.Request().Context()) != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
