package create_booking

import (
	"fmt"

	"github.com/holidaze/booking-gateway/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Проверки доступности и вместимости выполняются позже, на данных venue
func validateRequest(req *Request) error {
	if req.VenueID == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}

	if req.DateFrom.IsZero() {
		return fmt.Errorf("%w: dateFrom is required", ErrInvalidInput)
	}

	if req.DateTo.IsZero() {
		return fmt.Errorf("%w: dateTo is required", ErrInvalidInput)
	}

	if err := validateGuests(req.Guests); err != nil {
		return err
	}

	if domain.Nights(req.DateFrom, req.DateTo) > domain.MaxStayNights {
		return fmt.Errorf("%w: stay cannot exceed %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	return nil
}

// validateGuests проверяет инварианты состава гостей
func validateGuests(guests domain.GuestCounts) error {
	if guests.Adults < domain.MinAdults {
		return fmt.Errorf("%w: booking requires at least %d adult", ErrInvalidInput, domain.MinAdults)
	}

	if guests.Children < 0 || guests.Infants < 0 || guests.Pets < 0 {
		return fmt.Errorf("%w: guest counts cannot be negative", ErrInvalidInput)
	}

	if guests.Total() > domain.MaxGuestsPerGroup {
		return fmt.Errorf("%w: guest count cannot exceed %d", ErrInvalidInput, domain.MaxGuestsPerGroup)
	}

	return nil
}
