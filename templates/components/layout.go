package components

import (
	"car_rental_app_go/middleware"
	"car_rental_app_go/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PageConfig holds the document-level settings of a page
type PageConfig struct {
	SEO   *models.SEO
	Nonce string
}

// Page wraps body sections in the HTML document shell
func Page(cfg PageConfig, body ...g.Node) g.Node {
	seo := cfg.SEO
	if seo == nil {
		seo = models.DefaultSEO("", "")
	}

	return Doctype(
		HTML(
			Lang(seo.Locale),
			Head(
				Meta(g.Attr("charset", "utf-8")),
				Meta(Name("viewport"), g.Attr("content", "width=device-width, initial-scale=1")),
				g.El("title", g.Text(seo.Title)),
				Meta(Name("description"), g.Attr("content", seo.Description)),
				g.If(seo.Keywords != "", Meta(Name("keywords"), g.Attr("content", seo.Keywords))),
				g.If(seo.Canonical != "", Link(Rel("canonical"), Href(seo.Canonical))),
				g.If(seo.NoIndex, Meta(Name("robots"), g.Attr("content", "noindex"))),
				Meta(g.Attr("property", "og:title"), g.Attr("content", seo.GetOGTitle())),
				Meta(g.Attr("property", "og:description"), g.Attr("content", seo.GetOGDesc())),
				Meta(g.Attr("property", "og:type"), g.Attr("content", seo.OGType)),
				g.If(seo.OGImage != "", Meta(g.Attr("property", "og:image"), g.Attr("content", seo.OGImage))),
				Link(Rel("icon"), Href(middleware.AssetURL("images/favicon.png"))),
				Link(Rel("stylesheet"), Href(middleware.AssetURL("css/site.css"))),
			),
			Body(
				g.Group(body),
				Script(Src(middleware.AssetURL("js/search-sync.js")), g.Attr("nonce", cfg.Nonce), g.Attr("defer")),
			),
		),
	)
}
