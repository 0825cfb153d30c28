package create_booking

import (
	"time"

	"github.com/holidaze/booking-gateway/internal/domain"
	"github.com/holidaze/booking-gateway/internal/session"
	createBooking "github.com/holidaze/booking-gateway/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VenueID  string `json:"venueId"`
	DateFrom string `json:"dateFrom"` // "2025-10-15"
	DateTo   string `json:"dateTo"`   // "2025-10-18"
	Adults   int    `json:"adults"`
	Children int    `json:"children,omitempty"`
	Infants  int    `json:"infants,omitempty"`
	Pets     int    `json:"pets,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        string          `json:"id"`
	VenueID   string          `json:"venueId"`
	DateFrom  string          `json:"dateFrom"`
	DateTo    string          `json:"dateTo"`
	Guests    int             `json:"guests"`
	Pricing   PricingResponse `json:"pricing"`
	CreatedAt string          `json:"createdAt"`
}

// PricingResponse расчет стоимости на момент отправки
type PricingResponse struct {
	Nights    int     `json:"nights"`
	BasePrice float64 `json:"basePrice"`
	GuestFee  float64 `json:"guestFee"`
	Total     float64 `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(user *session.User) (*createBooking.Request, error) {
	dateFrom, err := time.Parse(domain.DateFormat, r.DateFrom)
	if err != nil {
		return nil, err
	}

	dateTo, err := time.Parse(domain.DateFormat, r.DateTo)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		User:     user,
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
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:       resp.BookingID,
		VenueID:  resp.VenueID,
		DateFrom: resp.DateFrom.Format(domain.DateFormat),
		DateTo:   resp.DateTo.Format(domain.DateFormat),
		Guests:   resp.Guests,
		Pricing: PricingResponse{
			Nights:    resp.Pricing.Nights,
			BasePrice: resp.Pricing.BasePrice,
			GuestFee:  resp.Pricing.GuestFee,
			Total:     resp.Pricing.Total,
		},
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
