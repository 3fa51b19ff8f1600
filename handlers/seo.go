package handlers

import (
	"strings"

	"car_rental_app_go/models"
)

const defaultOGImage = "/static/images/og-image.png"

// SEO configurations for public pages. Canonical and image paths are
// relative and resolved against the configured app URL.
var pageSEO = map[string]*models.SEO{
	"home": {
		Title:       "Northline Car Rental & Sales | Rent or buy inspected cars",
		Description: "Pick your dates and compare daily rates on economy cars, SUVs, vans and luxury models. Certified pre-owned vehicles for sale with a 12-month warranty.",
		Keywords:    "car rental, rent a car, used cars for sale, suv rental, van hire",
		Canonical:   "/",
		OGImage:     defaultOGImage,
		OGType:      "website",
		Locale:      "en",
	},
}

// GetSEO returns the SEO configuration for a page with absolute URLs, or nil for unknown pages
func GetSEO(page, appURL string) *models.SEO {
	seo, ok := pageSEO[page]
	if !ok {
		return nil
	}

	// Return a copy to avoid mutations
	copy := *seo
	base := strings.TrimRight(appURL, "/")
	copy.Canonical = base + seo.Canonical
	copy.OGImage = base + seo.OGImage
	return &copy
}
