package quote_booking

import (
	"time"

	"github.com/holidaze/booking-gateway/internal/domain"
	quoteBooking "github.com/holidaze/booking-gateway/internal/usecase/quote_booking"
)

// QuoteBookingRequest HTTP request model
type QuoteBookingRequest struct {
	VenueID  string `json:"venueId"`
	DateFrom string `json:"dateFrom"` // "2025-10-15"
	DateTo   string `json:"dateTo"`   // "2025-10-18"
	Adults   int    `json:"adults"`
	Children int    `json:"children,omitempty"`
	Infants  int    `json:"infants,omitempty"`
	Pets     int    `json:"pets,omitempty"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	VenueID     string  `json:"venueId"`
	NightlyRate float64 `json:"nightlyRate"`
	Guests      int     `json:"guests"`
	Nights      int     `json:"nights"`
	BasePrice   float64 `json:"basePrice"`
	GuestFee    float64 `json:"guestFee"`
	Total       float64 `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteBookingRequest) ToUseCaseRequest() (*quoteBooking.Request, error) {
	dateFrom, err := time.Parse(domain.DateFormat, r.DateFrom)
	if err != nil {
		return nil, err
	}

	dateTo, err := time.Parse(domain.DateFormat, r.DateTo)
	if err != nil {
		return nil, err
	}

	return &quoteBooking.Request{
		VenueID:  r.VenueID,
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Guests: domain.GuestCounts{
			Adults:   r.Adults,
			Children: r.Children,
			Infants:  r.Infants,
			Pets:     r.Pets,
		},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteResponse {
	return &QuoteResponse{
		VenueID:     resp.VenueID,
		NightlyRate: resp.NightlyRate,
		Guests:      resp.Guests,
		Nights:      resp.Pricing.Nights,
		BasePrice:   resp.Pricing.BasePrice,
		GuestFee:    resp.Pricing.GuestFee,
		Total:       resp.Pricing.Total,
	}
}
