package components

import (
	"car_rental_app_go/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func ServicesSection(offered []models.Service) g.Node {
	return Section(
		ID("services"),
		Class("services"),
		H2(Class("section-title"), g.Text("What we offer")),
		Div(
			Class("services__grid"),
			g.Group(g.Map(offered, func(s models.Service) g.Node {
				return Div(
					ID("service-"+s.Slug),
					Class("service-card"),
					Span(Class("icon icon--"+s.Icon), g.Attr("aria-hidden", "true")),
					H3(g.Text(s.Title)),
					P(Markup(s.Summary)),
				)
			})),
		),
	)
}
