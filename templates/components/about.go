package components

import (
	"car_rental_app_go/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func AboutSection(company models.CompanyInfo) g.Node {
	return Section(
		ID("about"),
		Class("about"),
		H2(Class("section-title"), g.Text("About "+company.Name)),
		P(Class("about__description"), Markup(company.Description)),
		Ul(
			Class("about__stats"),
			g.Group(g.Map(company.Stats, func(s models.CompanyStat) g.Node {
				return Li(
					Class("about__stat"),
					Strong(g.Text(s.Value)),
					Span(g.Text(s.Label)),
				)
			})),
		),
	)
}
