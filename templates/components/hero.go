package components

import (
	"car_rental_app_go/middleware"
	"car_rental_app_go/templates/partials"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HeroView is the state of the hero search widget at render time
type HeroView struct {
	CompanyName string
	Tagline     string
	FromDate    string
	ToDate      string
	MinFrom     string
	MinTo       string
	CSRFToken   string
}

// HeroSection renders the banner with the rental date search form
func HeroSection(v HeroView) g.Node {
	return Section(
		ID("hero"),
		Class("hero"),
		Div(
			Class("hero__content"),
			H1(Class("hero__title"), g.Text(v.CompanyName)),
			P(Class("hero__tagline"), g.Text(v.Tagline)),
			g.El("form",
				ID("hero-search"),
				Class("hero__search"),
				g.Attr("method", "post"),
				g.Attr("action", "/search"),
				g.Attr("data-search-sync", "producer"),
				partials.CSRFField(middleware.CSRFFormField, v.CSRFToken),
				partials.DateField("from", "Pick-up date", v.FromDate, v.MinFrom),
				partials.DateField("to", "Return date", v.ToDate, v.MinTo),
				Button(Type("submit"), Class("hero__submit"), g.Text("Search vehicles")),
			),
		),
	)
}
