package handlers

import (
	"errors"
	"net/http"
	"strings"

	"car_rental_app_go/logger"
	"car_rental_app_go/middleware"
	"car_rental_app_go/services/searchsync"
	"car_rental_app_go/services/widgets"

	"github.com/labstack/echo/v4"
)

// SearchSubmitHandler handles the hero search form. The widget's scroll to the
// results becomes a redirect fragment; rejected ranges still land there.
func SearchSubmitHandler(c echo.Context) error {
	svc := middleware.GetSearchSync(c)
	scroll := &widgets.AnchorRecorder{}

	hero := widgets.NewHeroSearch(svc, scroll)
	hero.Mount()
	defer hero.Unmount()

	hero.SetFrom(strings.TrimSpace(c.FormValue("from")))
	hero.SetTo(strings.TrimSpace(c.FormValue("to")))

	if err := hero.Submit(); err != nil {
		logger.WithFields(logger.Fields{
			"visitor_id": middleware.GetVisitorID(c),
			"from":       hero.FromDate(),
			"to":         hero.ToDate(),
		}).WithError(err).Debug("Search not saved")
	}

	target := "/" + scroll.Fragment()
	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Location", target)
		return c.NoContent(http.StatusNoContent)
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// searchResponse is the JSON shape of the persisted search
type searchResponse struct {
	FromDate   string `json:"fromDate"`
	ToDate     string `json:"toDate"`
	RentalDays string `json:"rentalDays"`
}

func newSearchResponse(p searchsync.PersistedSearch) searchResponse {
	return searchResponse{FromDate: p.FromDate, ToDate: p.ToDate, RentalDays: p.RentalDays}
}

// GetSearchHandler returns the visitor's persisted search
func GetSearchHandler(c echo.Context) error {
	svc := middleware.GetSearchSync(c)
	return c.JSON(http.StatusOK, newSearchResponse(svc.Persisted()))
}

// UpdateSearchHandler applies a range from the vehicle filter
func UpdateSearchHandler(c echo.Context) error {
	var r searchsync.DateRange
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	r.From = strings.TrimSpace(r.From)
	r.To = strings.TrimSpace(r.To)

	if r.IsEmpty() {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Both dates are required")
	}

	svc := middleware.GetSearchSync(c)
	filter := widgets.NewFilterSection(svc)
	filter.Mount()
	defer filter.Unmount()

	if err := filter.Apply(r); err != nil {
		switch {
		case errors.Is(err, searchsync.ErrPartialRange),
			errors.Is(err, searchsync.ErrInvalidDate),
			errors.Is(err, searchsync.ErrNegativeRange):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		default:
			logger.WithError(err).Error("Failed to save search")
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save search")
		}
	}

	return c.JSON(http.StatusOK, newSearchResponse(svc.Persisted()))
}
