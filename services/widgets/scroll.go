package widgets

// Scroller moves the view to the element with the given id.
// Implementations treat a missing target as a no-op.
type Scroller interface {
	ScrollTo(anchor string)
}

// ScrollFunc adapts a function to Scroller
type ScrollFunc func(anchor string)

func (f ScrollFunc) ScrollTo(anchor string) {
	f(anchor)
}

// AnchorRecorder remembers the last anchor scrolled to. HTTP handlers use it
// to turn a scroll into a redirect fragment.
type AnchorRecorder struct {
	Anchor string
}

func (r *AnchorRecorder) ScrollTo(anchor string) {
	r.Anchor = anchor
}

// Fragment returns "#anchor", or "" when nothing was scrolled to
func (r *AnchorRecorder) Fragment() string {
	if r.Anchor == "" {
		return ""
	}
	return "#" + r.Anchor
}
