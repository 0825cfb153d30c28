package domain

// GuestCounts is the guest composition of a booking attempt.
// Invariant: Adults >= 1 (a booking requires at least one adult).
type GuestCounts struct {
	Adults   int
	Children int
	Infants  int
	Pets     int
}

// DefaultGuestCounts returns the form defaults: one adult, nothing else
func DefaultGuestCounts() GuestCounts {
	return GuestCounts{Adults: MinAdults}
}

// Total returns the flattened guest count sent to the external booking API,
// which has no notion of guest sub-categories
func (g GuestCounts) Total() int {
	return g.Adults + g.Children + g.Infants + g.Pets
}

// Occupancy returns the number of guests counted against a venue's capacity.
// Infants and pets do not occupy a guest spot.
func (g GuestCounts) Occupancy() int {
	return g.Adults + g.Children
}

// ExceedsCapacity reports whether the composition overflows the venue's
// maximum guest capacity
func (g GuestCounts) ExceedsCapacity(maxGuests int) bool {
	return g.Occupancy() > maxGuests
}
