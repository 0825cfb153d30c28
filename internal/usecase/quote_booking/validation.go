package quote_booking

import (
	"fmt"

	"github.com/holidaze/booking-gateway/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Лимиты совпадают с create_booking: расчет не должен проходить там,
// где последующее бронирование будет отклонено
func validateRequest(req *Request) error {
	if req.VenueID == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}

	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return fmt.Errorf("%w: dateFrom and dateTo are required", ErrInvalidInput)
	}

	if req.Guests.Adults < domain.MinAdults {
		return fmt.Errorf("%w: booking requires at least %d adult", ErrInvalidInput, domain.MinAdults)
	}

	if req.Guests.Children < 0 || req.Guests.Infants < 0 || req.Guests.Pets < 0 {
		return fmt.Errorf("%w: guest counts cannot be negative", ErrInvalidInput)
	}

	if req.Guests.Total() > domain.MaxGuestsPerGroup {
		return fmt.Errorf("%w: guest count cannot exceed %d", ErrInvalidInput, domain.MaxGuestsPerGroup)
	}

	if domain.Nights(req.DateFrom, req.DateTo) > domain.MaxStayNights {
		return fmt.Errorf("%w: stay cannot exceed %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	return nil
}
