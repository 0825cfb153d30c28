package get_availability

import "errors"

var (
	// ErrVenueNotFound возвращается, когда venue не найден
	ErrVenueNotFound = errors.New("get_availability: venue not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
