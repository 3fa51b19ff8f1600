package widgets

import (
	"sync"

	"car_rental_app_go/models"
	"car_rental_app_go/services/searchsync"
)

// FilterSection is the vehicle list's date filter. It reads the shared
// search on mount and on every change, and can push a new range back.
type FilterSection struct {
	sync *searchsync.Service

	mu          sync.Mutex
	current     searchsync.DateRange
	days        int
	unsubscribe searchsync.Unsubscribe
}

// Quote is a vehicle priced for the current range
type Quote struct {
	Vehicle    models.Vehicle `json:"vehicle"`
	RentalDays int            `json:"rental_days"`
	TotalCents int64          `json:"total_cents"`
}

// NewFilterSection creates an unmounted filter
func NewFilterSection(svc *searchsync.Service) *FilterSection {
	return &FilterSection{sync: svc}
}

// Mount reads the persisted search and subscribes for changes. Mounting twice is a no-op.
func (f *FilterSection) Mount() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.unsubscribe != nil {
		return
	}

	p := f.sync.Persisted()
	f.current = p.Range()
	f.days = 0
	if f.current.IsComplete() {
		f.days = p.Days()
	}
	f.unsubscribe = f.sync.Subscribe(f.onChange)
}

// Unmount releases the subscription
func (f *FilterSection) Unmount() {
	f.mu.Lock()
	unsubscribe := f.unsubscribe
	f.unsubscribe = nil
	f.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (f *FilterSection) onChange(msg searchsync.Message) {
	days, err := msg.Range.Days()
	if err != nil {
		days = 0
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.current, f.days = msg.Range, days
}

// Apply persists r through the shared service; every mounted widget, this one included, re-syncs
func (f *FilterSection) Apply(r searchsync.DateRange) error {
	return f.sync.Set(r)
}

// Range returns the range the filter currently shows
func (f *FilterSection) Range() searchsync.DateRange {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// RentalDays returns the day count for the current range, 0 when none
func (f *FilterSection) RentalDays() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.days
}

// Quotes prices vehicles for the current range. Vehicles outside category are
// skipped unless category is empty.
func (f *FilterSection) Quotes(vehicles []models.Vehicle, category string) []Quote {
	days := f.RentalDays()
	if days < 0 {
		days = 0
	}

	quotes := make([]Quote, 0, len(vehicles))
	for _, v := range vehicles {
		if category != "" && v.Category != category {
			continue
		}
		quotes = append(quotes, Quote{
			Vehicle:    v,
			RentalDays: days,
			TotalCents: int64(days) * v.DailyRateCents,
		})
	}
	return quotes
}
