package domain

import "time"

// PricingResult is the derived charge breakdown for a stay.
// Never persisted; recomputed on every relevant input change.
type PricingResult struct {
	Nights    int
	BasePrice float64
	GuestFee  float64
	Total     float64
}

// Nights counts the lodging nights charged for [start, end]: the date-only
// day difference plus one, floored at 1. A same-day range counts as 1 night.
func Nights(start, end time.Time) int {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	nights := int(endDay.Sub(startDay)/(24*time.Hour)) + 1
	if nights < 1 {
		nights = 1
	}

	return nights
}

// ComputeTotal computes the total charge for a stay:
//
//	basePrice = nights * nightlyRate
//	guestFee  = (totalGuests - 1) * extraGuestFee, when more than one guest
//	total     = basePrice + guestFee
//
// No currency conversion and no rounding beyond the inputs' own precision.
func ComputeTotal(start, end time.Time, nightlyRate float64, guests GuestCounts, extraGuestFee float64) PricingResult {
	nights := Nights(start, end)
	basePrice := float64(nights) * nightlyRate

	var guestFee float64
	if total := guests.Total(); total > 1 {
		guestFee = float64(total-1) * extraGuestFee
	}

	return PricingResult{
		Nights:    nights,
		BasePrice: basePrice,
		GuestFee:  guestFee,
		Total:     basePrice + guestFee,
	}
}
