package components

import (
	"strconv"
	"strings"

	"car_rental_app_go/services/searchsync"
	"car_rental_app_go/services/widgets"
	"car_rental_app_go/templates/partials"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// VehiclesView is the state of the vehicle filter section at render time
type VehiclesView struct {
	Range      searchsync.DateRange
	RentalDays int
	Category   string
	Categories []string
	Quotes     []widgets.Quote
}

// VehiclesSection renders the results area the hero search scrolls to
func VehiclesSection(v VehiclesView) g.Node {
	return Section(
		ID(searchsync.ResultsAnchor),
		Class("vehicles"),
		g.Attr("data-search-sync", "consumer"),
		g.Attr("data-search", JSON(v.Range)),
		H2(Class("section-title"), g.Text("Our fleet")),
		searchSummary(v),
		categoryNav(v.Category, v.Categories),
		Div(
			Class("vehicles__grid"),
			g.Group(g.Map(v.Quotes, vehicleCard)),
		),
	)
}

func searchSummary(v VehiclesView) g.Node {
	if !v.Range.IsComplete() {
		return P(Class("vehicles__summary"), g.Text("Pick your dates above to see rental totals."))
	}
	return P(
		Class("vehicles__summary"),
		g.Text("Showing prices for "),
		Strong(g.Text(partials.FormatDays(v.RentalDays))),
		g.Text(" from "+v.Range.From+" to "+v.Range.To+"."),
	)
}

func categoryNav(active string, categories []string) g.Node {
	link := func(label, category string) g.Node {
		href := "/?category=" + category + "#" + searchsync.ResultsAnchor
		if category == "" {
			href = "/#" + searchsync.ResultsAnchor
		}
		return A(
			Href(href),
			Class("vehicles__category"),
			g.If(category == active, g.Attr("aria-current", "true")),
			g.Text(label),
		)
	}

	return Nav(
		Class("vehicles__categories"),
		link("All", ""),
		g.Group(g.Map(categories, func(c string) g.Node {
			return link(strings.ToUpper(c[:1])+c[1:], c)
		})),
	)
}

func vehicleCard(q widgets.Quote) g.Node {
	v := q.Vehicle
	return Div(
		ID("vehicle-"+v.ID),
		Class("vehicle-card"),
		g.Attr("data-daily-rate", strconv.FormatInt(v.DailyRateCents, 10)),
		Img(Src(v.ImageURL), Alt(v.DisplayName()), g.Attr("loading", "lazy")),
		H3(g.Text(v.DisplayName())),
		Ul(
			Class("vehicle-card__specs"),
			Li(g.Text(strconv.Itoa(v.Seats)+" seats")),
			Li(g.Text(v.Transmission)),
			Li(g.Text(v.Fuel)),
		),
		P(Class("vehicle-card__rate"), g.Text(partials.FormatMoney(v.DailyRateCents)+" / day")),
		g.If(q.RentalDays > 0,
			P(Class("vehicle-card__total"), g.Text("Total "+partials.FormatMoney(q.TotalCents))),
		),
		g.If(v.ForSale,
			P(Class("vehicle-card__sale"), g.Text("Also for sale: "+partials.FormatMoney(v.SalePriceCents))),
		),
	)
}
