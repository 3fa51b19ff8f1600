package pages

import (
	"car_rental_app_go/models"
	"car_rental_app_go/templates/components"
)

// HomeViewModel holds everything the landing page renders
type HomeViewModel struct {
	SEO      *models.SEO
	Nonce    string
	Company  models.CompanyInfo
	Services []models.Service
	Hero     components.HeroView
	Vehicles components.VehiclesView
	Year     int
}
