package get_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}

	// Кандидатский диапазон указывается целиком или не указывается вовсе
	if (req.From == nil) != (req.To == nil) {
		return fmt.Errorf("%w: from and to must be provided together", ErrInvalidInput)
	}

	return nil
}
