package components

import (
	"github.com/microcosm-cc/bluemonday"
	g "maragu.dev/gomponents"
)

// copyPolicy allows the inline emphasis used in catalog copy and nothing else
var copyPolicy = bluemonday.NewPolicy().AllowElements("strong", "em", "b", "i", "br")

// Markup renders catalog copy that may contain inline markup
func Markup(s string) g.Node {
	return g.Raw(copyPolicy.Sanitize(s))
}
