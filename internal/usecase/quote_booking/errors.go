package quote_booking

import "errors"

var (
	// ErrVenueNotFound возвращается, когда venue не найден
	ErrVenueNotFound = errors.New("quote_booking: venue not found")

	// ErrOverCapacity возвращается, когда число гостей превышает вместимость venue
	ErrOverCapacity = errors.New("quote_booking: guest count exceeds venue capacity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_booking: internal error")
)
