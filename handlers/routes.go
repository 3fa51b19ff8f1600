package handlers

import (
	"car_rental_app_go/middleware"
	"car_rental_app_go/services/searchsync"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the public site. The visitor and search-sync
// middleware run on every route that touches the saved search.
func RegisterRoutes(e *echo.Echo, hub *searchsync.Hub) {
	e.GET("/health", HealthHandler)

	site := e.Group("", middleware.Visitor(), middleware.SearchSync(hub))
	site.GET("/", HomeHandler)
	site.POST("/search", SearchSubmitHandler, middleware.SearchRateLimiter.Middleware())
	site.GET("/ws/search", SearchWebSocketHandler)

	api := site.Group("/api", middleware.APIRateLimiter.Middleware())
	api.GET("/search", GetSearchHandler)
	api.PUT("/search", UpdateSearchHandler, middleware.SearchRateLimiter.Middleware())
	api.GET("/catalog/vehicles", ListVehiclesHandler)
	api.GET("/catalog/vehicles/:id", GetVehicleHandler)
}
