package domain

import "time"

// Booking represents a confirmed stay as recorded by the Holidaze API
type Booking struct {
	ID       string
	VenueID  string
	DateFrom time.Time
	DateTo   time.Time
	Guests   int

	Created time.Time
	Updated time.Time
}

// Interval returns the booking's occupied date range
func (b *Booking) Interval() (DateInterval, error) {
	return NewDateInterval(b.DateFrom, b.DateTo)
}

// IsUpcoming reports whether the stay has not yet ended
func (b *Booking) IsUpcoming(today time.Time) bool {
	return !truncateToDay(b.DateTo).Before(truncateToDay(today))
}
