package models

import "strconv"

// CompanyInfo holds the business details shown in the about section and footer
type CompanyInfo struct {
	Name        string
	Tagline     string
	Description string // may contain inline markup, sanitized before rendering
	Phone       string
	Email       string
	Address     string
	Hours       []OpeningHours
	Socials     []SocialLink
	Stats       []CompanyStat
}

type OpeningHours struct {
	Days  string
	Hours string
}

type SocialLink struct {
	Network string
	URL     string
}

type CompanyStat struct {
	Label string
	Value string
}

// Service is an offering listed in the services section
type Service struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Icon    string `json:"icon"`
}

// Vehicle categories
const (
	VehicleCategoryEconomy = "economy"
	VehicleCategorySUV     = "suv"
	VehicleCategoryLuxury  = "luxury"
	VehicleCategoryVan     = "van"
)

// Vehicle is an inventory entry available for rent and optionally for sale
type Vehicle struct {
	ID             string `json:"id"`
	Make           string `json:"make"`
	Model          string `json:"model"`
	Year           int    `json:"year"`
	Category       string `json:"category"`
	Seats          int    `json:"seats"`
	Transmission   string `json:"transmission"`
	Fuel           string `json:"fuel"`
	DailyRateCents int64  `json:"daily_rate_cents"`
	ForSale        bool   `json:"for_sale"`
	SalePriceCents int64  `json:"sale_price_cents,omitempty"`
	ImageURL       string `json:"image_url"`
}

// DisplayName returns "Year Make Model"
func (v Vehicle) DisplayName() string {
	return strconv.Itoa(v.Year) + " " + v.Make + " " + v.Model
}
