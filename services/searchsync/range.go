package searchsync

import (
	"errors"
	"fmt"
	"strconv"

	"car_rental_app_go/services"
)

var (
	// ErrPartialRange is returned when only one of from/to is set
	ErrPartialRange = errors.New("date range must have both from and to, or neither")
	// ErrInvalidDate is returned when a bound is not a YYYY-MM-DD calendar date
	ErrInvalidDate = errors.New("invalid date")
	// ErrNegativeRange is returned when to is before from
	ErrNegativeRange = errors.New("return date is before pick-up date")
)

// DateRange is a rental period as ISO calendar dates. Both fields are empty or both are set.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// IsEmpty reports whether neither bound is set
func (r DateRange) IsEmpty() bool {
	return r.From == "" && r.To == ""
}

// IsComplete reports whether both bounds are set
func (r DateRange) IsComplete() bool {
	return r.From != "" && r.To != ""
}

// Validate checks the both-or-neither invariant and that set bounds parse as dates.
// It does not check ordering; see Days.
func (r DateRange) Validate() error {
	if r.IsEmpty() {
		return nil
	}
	if !r.IsComplete() {
		return ErrPartialRange
	}
	if _, err := services.ParseDate(r.From); err != nil {
		return fmt.Errorf("%w: from %q", ErrInvalidDate, r.From)
	}
	if _, err := services.ParseDate(r.To); err != nil {
		return fmt.Errorf("%w: to %q", ErrInvalidDate, r.To)
	}
	return nil
}

// Days returns the number of calendar days between from and to.
// The result is negative when to is before from.
func (r DateRange) Days() (int, error) {
	if !r.IsComplete() {
		return 0, ErrPartialRange
	}
	if err := r.Validate(); err != nil {
		return 0, err
	}
	from, _ := services.ParseDate(r.From)
	to, _ := services.ParseDate(r.To)
	return services.RentalDays(from, to), nil
}

// Message is published on the bus after the persisted search changes
type Message struct {
	Type  string    `json:"type"`
	Range DateRange `json:"range"`
}

// NewDateRangeChanged builds the message announcing r
func NewDateRangeChanged(r DateRange) Message {
	return Message{Type: MessageDateRangeChanged, Range: r}
}

// PersistedSearch is the three-key record as stored
type PersistedSearch struct {
	FromDate   string `json:"fromDate"`
	ToDate     string `json:"toDate"`
	RentalDays string `json:"rentalDays"`
}

// Days parses RentalDays, returning 0 when absent or malformed
func (p PersistedSearch) Days() int {
	n, err := strconv.Atoi(p.RentalDays)
	if err != nil {
		return 0
	}
	return n
}

// Range returns the stored range, or an empty one when either date is missing or malformed
func (p PersistedSearch) Range() DateRange {
	r := DateRange{From: p.FromDate, To: p.ToDate}
	if !r.IsComplete() || r.Validate() != nil {
		return DateRange{}
	}
	return r
}
