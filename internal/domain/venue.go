package domain

import (
	"strings"
	"time"
)

// Venue represents a bookable property listing as served by the Holidaze API
type Venue struct {
	ID          string
	Name        string
	Description string
	Price       float64 // nightly rate
	MaxGuests   int
	Rating      float64
	MediaURLs   []string
	Meta        VenueMeta
	Location    VenueLocation
	Owner       *VenueOwner
	Bookings    []Booking

	Created time.Time
	Updated time.Time
}

// VenueMeta amenity flags of a venue
type VenueMeta struct {
	WiFi      bool
	Parking   bool
	Breakfast bool
	Pets      bool
}

// VenueLocation address data of a venue
type VenueLocation struct {
	Address   string
	City      string
	Zip       string
	Country   string
	Continent string
	Latitude  float64
	Longitude float64
}

// VenueOwner identity of the venue manager owning the listing
type VenueOwner struct {
	Name   string
	Email  string
	Avatar string
}

// IsOwnedBy reports whether the profile with the given name owns this venue.
// Profile names are case-insensitive upstream.
func (v *Venue) IsOwnedBy(profileName string) bool {
	return v.Owner != nil && profileName != "" &&
		strings.EqualFold(v.Owner.Name, profileName)
}

// BookingIntervals returns the venue's existing bookings as date intervals.
// Inverted upstream records are dropped rather than failing the whole list.
func (v *Venue) BookingIntervals() []DateInterval {
	intervals := make([]DateInterval, 0, len(v.Bookings))
	for _, b := range v.Bookings {
		interval, err := NewDateInterval(b.DateFrom, b.DateTo)
		if err != nil {
			continue
		}
		intervals = append(intervals, interval)
	}
	return intervals
}

// BlockedDays expands the venue's bookings into the set of unavailable days
func (v *Venue) BlockedDays() BlockedDays {
	return ExpandIntervals(v.BookingIntervals())
}
