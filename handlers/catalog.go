package handlers

import (
	"net/http"

	"car_rental_app_go/middleware"
	"car_rental_app_go/services"
	"car_rental_app_go/services/widgets"

	"github.com/labstack/echo/v4"
)

// ListVehiclesHandler returns the fleet priced for the visitor's current search
func ListVehiclesHandler(c echo.Context) error {
	category := c.QueryParam("category")
	if category != "" && !services.IsVehicleCategory(category) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown vehicle category")
	}

	filter := widgets.NewFilterSection(middleware.GetSearchSync(c))
	filter.Mount()
	defer filter.Unmount()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"range":    filter.Range(),
		"vehicles": filter.Quotes(services.Vehicles(category), ""),
	})
}

// GetVehicleHandler returns a single vehicle by id
func GetVehicleHandler(c echo.Context) error {
	vehicle, ok := services.FindVehicle(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Vehicle not found")
	}
	return c.JSON(http.StatusOK, vehicle)
}
