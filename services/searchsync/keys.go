// Package searchsync shares the visitor's rental search dates between page
// components. A Service persists the range under fixed keys and announces
// every change on a synchronous per-visitor bus.
package searchsync

// Persisted search keys
const (
	KeyFromDate   = "searchFromDate"
	KeyToDate     = "searchToDate"
	KeyRentalDays = "rentalDays"
)

const (
	// SignalDateFilterUpdated is the browser event name re-dispatched by the websocket client
	SignalDateFilterUpdated = "dateFilterUpdated"
	// MessageDateRangeChanged is the type of every message published on the bus
	MessageDateRangeChanged = "date-range-changed"
	// ResultsAnchor is the element id the search widget scrolls to after submitting
	ResultsAnchor = "vehicles"
)
