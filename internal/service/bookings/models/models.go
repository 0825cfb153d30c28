package models

import (
	"time"

	"github.com/holidaze/booking-gateway/internal/domain"
	"github.com/holidaze/booking-gateway/internal/session"
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	User         *session.User
	ProfileName  string
	UpcomingOnly bool
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID       string    `json:"id"`
	VenueID  string    `json:"venueId,omitempty"`
	DateFrom string    `json:"dateFrom"` // "2025-10-15"
	DateTo   string    `json:"dateTo"`
	Guests   int       `json:"guests"`
	Upcoming bool      `json:"upcoming"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking, today time.Time) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:       b.ID,
		VenueID:  b.VenueID,
		DateFrom: b.DateFrom.Format(domain.DateFormat),
		DateTo:   b.DateTo.Format(domain.DateFormat),
		Guests:   b.Guests,
		Upcoming: b.IsUpcoming(today),
		Created:  b.Created,
		Updated:  b.Updated,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, today time.Time) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: []BookingResponse{},
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, today); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
