package components

import (
	"strconv"

	"car_rental_app_go/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func SiteFooter(company models.CompanyInfo, year int) g.Node {
	return Footer(
		ID("contact"),
		Class("site-footer"),
		Div(
			Class("site-footer__contact"),
			H3(g.Text(company.Name)),
			P(g.Text(company.Address)),
			P(A(Href("tel:"+company.Phone), g.Text(company.Phone))),
			P(A(Href("mailto:"+company.Email), g.Text(company.Email))),
		),
		Ul(
			Class("site-footer__hours"),
			g.Group(g.Map(company.Hours, func(h models.OpeningHours) g.Node {
				return Li(Span(g.Text(h.Days)), g.Text(" "+h.Hours))
			})),
		),
		Ul(
			Class("site-footer__social"),
			g.Group(g.Map(company.Socials, func(s models.SocialLink) g.Node {
				return Li(A(Href(s.URL), g.Attr("rel", "noopener"), g.Attr("target", "_blank"), g.Text(s.Network)))
			})),
		),
		P(Class("site-footer__copyright"), g.Text("© "+strconv.Itoa(year)+" "+company.Name)),
	)
}
