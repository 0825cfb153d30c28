package bookings

import "errors"

var (
	// ErrRequiresLogin возвращается, когда запрос не содержит валидной сессии
	ErrRequiresLogin = errors.New("authentication required")

	// ErrAccessDenied возвращается, когда пользователь запрашивает чужие бронирования
	ErrAccessDenied = errors.New("access denied")

	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
