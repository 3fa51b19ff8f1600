package handlers

import (
	"time"

	"car_rental_app_go/config"
	"car_rental_app_go/middleware"
	"car_rental_app_go/services"
	"car_rental_app_go/services/widgets"
	"car_rental_app_go/templates/components"
	"car_rental_app_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// now is replaced in tests
var now = time.Now

// HomeHandler renders the landing page with the visitor's saved search restored
func HomeHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	svc := middleware.GetSearchSync(c)
	today := now().In(cfg.Location())

	category := c.QueryParam("category")
	if !services.IsVehicleCategory(category) {
		category = ""
	}

	// Rendering never scrolls; only a submit does
	hero := widgets.NewHeroSearch(svc, widgets.ScrollFunc(func(string) {}))
	hero.Mount()
	defer hero.Unmount()

	filter := widgets.NewFilterSection(svc)
	filter.Mount()
	defer filter.Unmount()

	company := services.Company()
	vm := pages.HomeViewModel{
		SEO:      GetSEO("home", cfg.AppURL),
		Nonce:    middleware.GetNonce(c.Request().Context()),
		Company:  company,
		Services: services.OfferedServices(),
		Hero: components.HeroView{
			CompanyName: company.Name,
			Tagline:     company.Tagline,
			FromDate:    hero.FromDate(),
			ToDate:      hero.ToDate(),
			MinFrom:     hero.MinFrom(today),
			MinTo:       hero.MinTo(today),
			CSRFToken:   middleware.GetCSRFToken(c),
		},
		Vehicles: components.VehiclesView{
			Range:      filter.Range(),
			RentalDays: filter.RentalDays(),
			Category:   category,
			Categories: services.VehicleCategories(),
			Quotes:     filter.Quotes(services.Vehicles(""), category),
		},
		Year: today.Year(),
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return pages.Home(vm).Render(c.Response().Writer)
}
