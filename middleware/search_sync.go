package middleware

import (
	"net/http"

	"car_rental_app_go/services/searchsync"

	"github.com/labstack/echo/v4"
)

// ContextKeySearchSync is the context key for the visitor's search-sync service
const ContextKeySearchSync = "search_sync"

// SearchSync binds the visitor's search-sync service to the request.
// It must run after Visitor.
func SearchSync(hub *searchsync.Hub) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			visitorID := GetVisitorID(c)
			if visitorID == "" {
				return echo.NewHTTPError(http.StatusInternalServerError, "Visitor not identified")
			}

			c.Set(ContextKeySearchSync, hub.Service(visitorID))
			return next(c)
		}
	}
}

// GetSearchSync retrieves the search-sync service from context
func GetSearchSync(c echo.Context) *searchsync.Service {
	svc, ok := c.Get(ContextKeySearchSync).(*searchsync.Service)
	if !ok {
		return nil
	}
	return svc
}
