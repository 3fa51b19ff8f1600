package pages

import (
	"car_rental_app_go/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Home is the single-page marketing site
func Home(vm HomeViewModel) g.Node {
	return components.Page(
		components.PageConfig{SEO: vm.SEO, Nonce: vm.Nonce},
		Main(
			components.HeroSection(vm.Hero),
			components.AboutSection(vm.Company),
			components.ServicesSection(vm.Services),
			components.VehiclesSection(vm.Vehicles),
		),
		components.SiteFooter(vm.Company, vm.Year),
	)
}
