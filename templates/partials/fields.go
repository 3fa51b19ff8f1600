package partials

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CSRFField is the hidden input carrying the CSRF token
func CSRFField(fieldName, token string) g.Node {
	return Input(Type("hidden"), Name(fieldName), Value(token))
}

// DateField is a labelled date input with a minimum selectable date
func DateField(id, label, value, min string) g.Node {
	return Div(
		Class("date-field"),
		g.El("label", g.Attr("for", id), g.Text(label)),
		Input(
			Type("date"),
			ID(id),
			Name(id),
			Value(value),
			g.Attr("min", min),
		),
	)
}
