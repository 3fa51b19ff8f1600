package services

import (
	"sort"

	"car_rental_app_go/models"
)

var company = models.CompanyInfo{
	Name:        "Northline Car Rental & Sales",
	Tagline:     "Rent it for the weekend. Keep it for life.",
	Description: "Family-run since 2009, we rent and sell <strong>inspected, low-mileage</strong> cars from two city locations. Every vehicle is cleaned, checked and insured before it leaves the lot.",
	Phone:       "+1 (555) 010-2040",
	Email:       "hello@northline.example",
	Address:     "1200 Harbor Road, Bayview",
	Hours: []models.OpeningHours{
		{Days: "Mon - Fri", Hours: "08:00 - 19:00"},
		{Days: "Sat", Hours: "09:00 - 17:00"},
		{Days: "Sun", Hours: "Closed"},
	},
	Socials: []models.SocialLink{
		{Network: "Instagram", URL: "https://instagram.com/northline"},
		{Network: "Facebook", URL: "https://facebook.com/northline"},
	},
	Stats: []models.CompanyStat{
		{Label: "Vehicles", Value: "120+"},
		{Label: "Happy customers", Value: "18k"},
		{Label: "Years on the road", Value: "15"},
	},
}

var offeredServices = []models.Service{
	{Slug: "daily-rental", Title: "Daily Rental", Summary: "Flexible pick-up and return, unlimited mileage on every booking.", Icon: "calendar"},
	{Slug: "long-term-lease", Title: "Long-Term Lease", Summary: "Monthly plans with maintenance and insurance <em>included</em>.", Icon: "key"},
	{Slug: "car-sales", Title: "Car Sales", Summary: "Certified pre-owned cars with a 12-month warranty.", Icon: "tag"},
	{Slug: "airport-delivery", Title: "Airport Delivery", Summary: "We bring the car to the terminal and collect it when you fly out.", Icon: "plane"},
}

var vehicles = []models.Vehicle{
	{ID: "toyota-corolla-2024", Make: "Toyota", Model: "Corolla", Year: 2024, Category: models.VehicleCategoryEconomy, Seats: 5, Transmission: "automatic", Fuel: "hybrid", DailyRateCents: 4500, ImageURL: "/static/images/vehicles/corolla.jpg"},
	{ID: "vw-golf-2023", Make: "Volkswagen", Model: "Golf", Year: 2023, Category: models.VehicleCategoryEconomy, Seats: 5, Transmission: "manual", Fuel: "petrol", DailyRateCents: 4000, ForSale: true, SalePriceCents: 2190000, ImageURL: "/static/images/vehicles/golf.jpg"},
	{ID: "honda-crv-2024", Make: "Honda", Model: "CR-V", Year: 2024, Category: models.VehicleCategorySUV, Seats: 5, Transmission: "automatic", Fuel: "petrol", DailyRateCents: 7200, ImageURL: "/static/images/vehicles/crv.jpg"},
	{ID: "kia-sorento-2022", Make: "Kia", Model: "Sorento", Year: 2022, Category: models.VehicleCategorySUV, Seats: 7, Transmission: "automatic", Fuel: "diesel", DailyRateCents: 7900, ForSale: true, SalePriceCents: 2850000, ImageURL: "/static/images/vehicles/sorento.jpg"},
	{ID: "bmw-5-2024", Make: "BMW", Model: "5 Series", Year: 2024, Category: models.VehicleCategoryLuxury, Seats: 5, Transmission: "automatic", Fuel: "electric", DailyRateCents: 16500, ImageURL: "/static/images/vehicles/bmw5.jpg"},
	{ID: "mercedes-vito-2023", Make: "Mercedes-Benz", Model: "Vito", Year: 2023, Category: models.VehicleCategoryVan, Seats: 8, Transmission: "automatic", Fuel: "diesel", DailyRateCents: 11000, ImageURL: "/static/images/vehicles/vito.jpg"},
}

// Company returns the company details
func Company() models.CompanyInfo {
	c := company
	c.Hours = append([]models.OpeningHours(nil), company.Hours...)
	c.Socials = append([]models.SocialLink(nil), company.Socials...)
	c.Stats = append([]models.CompanyStat(nil), company.Stats...)
	return c
}

// OfferedServices returns the services section entries
func OfferedServices() []models.Service {
	return append([]models.Service(nil), offeredServices...)
}

// Vehicles returns the inventory, optionally restricted to one category
func Vehicles(category string) []models.Vehicle {
	result := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if category == "" || v.Category == category {
			result = append(result, v)
		}
	}
	return result
}

// FindVehicle looks a vehicle up by id
func FindVehicle(id string) (models.Vehicle, bool) {
	for _, v := range vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

// VehicleCategories returns the distinct categories in the inventory, sorted
func VehicleCategories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, v := range vehicles {
		if !seen[v.Category] {
			seen[v.Category] = true
			categories = append(categories, v.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// IsVehicleCategory reports whether category is known; empty means all
func IsVehicleCategory(category string) bool {
	if category == "" {
		return true
	}
	for _, c := range VehicleCategories() {
		if c == category {
			return true
		}
	}
	return false
}
