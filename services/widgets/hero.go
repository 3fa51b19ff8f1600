// Package widgets holds the stateful page components that take part in
// search synchronisation: the hero search form and the vehicle filter.
package widgets

import (
	"sync"
	"time"

	"car_rental_app_go/services"
	"car_rental_app_go/services/searchsync"
)

// HeroSearch is the hero banner's rental date form. It restores the last
// search on mount, follows changes made elsewhere while mounted, and on
// submit persists the range and scrolls to the results.
type HeroSearch struct {
	sync     *searchsync.Service
	scroller Scroller

	mu          sync.Mutex
	fromDate    string
	toDate      string
	unsubscribe searchsync.Unsubscribe
}

// NewHeroSearch creates an unmounted widget
func NewHeroSearch(svc *searchsync.Service, scroller Scroller) *HeroSearch {
	return &HeroSearch{sync: svc, scroller: scroller}
}

// Mount loads the persisted range and subscribes for changes. Mounting twice is a no-op.
func (h *HeroSearch) Mount() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.unsubscribe != nil {
		return
	}

	r := h.sync.Get()
	h.fromDate, h.toDate = r.From, r.To
	h.unsubscribe = h.sync.Subscribe(h.onChange)
}

// Unmount releases the subscription
func (h *HeroSearch) Unmount() {
	h.mu.Lock()
	unsubscribe := h.unsubscribe
	h.unsubscribe = nil
	h.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Mounted reports whether the widget currently listens for changes
func (h *HeroSearch) Mounted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.unsubscribe != nil
}

func (h *HeroSearch) onChange(msg searchsync.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fromDate, h.toDate = msg.Range.From, msg.Range.To
}

// SetFrom updates the pick-up date field. Nothing is persisted.
func (h *HeroSearch) SetFrom(date string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fromDate = date
}

// SetTo updates the return date field. Nothing is persisted.
func (h *HeroSearch) SetTo(date string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.toDate = date
}

func (h *HeroSearch) FromDate() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fromDate
}

func (h *HeroSearch) ToDate() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.toDate
}

// MinFrom is the earliest selectable pick-up date
func (h *HeroSearch) MinFrom(now time.Time) string {
	return services.Today(now)
}

// MinTo is the earliest selectable return date
func (h *HeroSearch) MinTo(now time.Time) string {
	return services.MinToDate(h.FromDate(), now)
}

// Submit persists the range when both fields are set, then always scrolls
// to the results. Invalid or reversed ranges are not persisted and are
// returned as an error for the caller to log.
func (h *HeroSearch) Submit() error {
	defer h.scroller.ScrollTo(searchsync.ResultsAnchor)

	h.mu.Lock()
	r := searchsync.DateRange{From: h.fromDate, To: h.toDate}
	h.mu.Unlock()

	if r.From == "" || r.To == "" {
		return nil
	}
	return h.sync.Set(r)
}
