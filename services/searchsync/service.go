package searchsync

import (
	"strconv"

	"car_rental_app_go/logger"
)

// Service is the injectable search-sync collaborator shared by the hero
// widget, the vehicle filter and the websocket bridge.
type Service struct {
	store Store
	bus   Channel
}

// Channel is the notification side of a Service. *Bus implements it.
type Channel interface {
	Subscribe(handler Handler) Unsubscribe
	Publish(msg Message)
}

// NewService binds a store and a notification channel
func NewService(store Store, bus Channel) *Service {
	return &Service{store: store, bus: bus}
}

// Get returns the persisted range. Absent, partial or malformed values
// yield an empty range; store failures are logged and also yield empty.
func (s *Service) Get() DateRange {
	p := PersistedSearch{FromDate: s.read(KeyFromDate), ToDate: s.read(KeyToDate)}
	return p.Range()
}

// Persisted returns the three raw values as stored, empty strings for missing keys
func (s *Service) Persisted() PersistedSearch {
	return PersistedSearch{
		FromDate:   s.read(KeyFromDate),
		ToDate:     s.read(KeyToDate),
		RentalDays: s.read(KeyRentalDays),
	}
}

// Set persists a complete range with its day count and publishes a
// date-range-changed message. Subscribers have all run when Set returns.
func (s *Service) Set(r DateRange) error {
	days, err := r.Days()
	if err != nil {
		return err
	}
	if days < 0 {
		return ErrNegativeRange
	}

	err = s.store.Set(
		Entry{Key: KeyFromDate, Value: r.From},
		Entry{Key: KeyToDate, Value: r.To},
		Entry{Key: KeyRentalDays, Value: strconv.Itoa(days)},
	)
	if err != nil {
		return err
	}

	s.bus.Publish(NewDateRangeChanged(r))
	return nil
}

// Subscribe registers handler for date-range-changed messages
func (s *Service) Subscribe(handler Handler) Unsubscribe {
	return s.bus.Subscribe(handler)
}

func (s *Service) read(key string) string {
	value, ok, err := s.store.Get(key)
	if err != nil {
		logger.WithError(err).WithField("key", key).Warn("search store read failed")
		return ""
	}
	if !ok {
		return ""
	}
	return value
}
