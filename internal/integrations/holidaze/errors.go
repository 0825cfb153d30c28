package holidaze

import (
	"errors"
	"fmt"
)

var (
	// ErrVenueNotFound возвращается, когда venue не найден во внешнем API
	ErrVenueNotFound = errors.New("holidaze client: venue not found")

	// ErrProfileNotFound возвращается, когда профиль не найден во внешнем API
	ErrProfileNotFound = errors.New("holidaze client: profile not found")

	// ErrUnauthorized возвращается, когда внешний API отклонил токен пользователя
	ErrUnauthorized = errors.New("holidaze client: unauthorized")

	// ErrBookingRejected возвращается, когда внешний API отклонил создание бронирования
	// Оборачивается вместе с сообщением сервера, если оно есть
	ErrBookingRejected = errors.New("holidaze client: booking rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("holidaze client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе внешнего API
	ErrInvalidResponse = errors.New("holidaze client: invalid response")
)

// RejectionError отклонение бронирования внешним API
// Несет сообщение сервера, чтобы выше его можно было показать дословно
type RejectionError struct {
	StatusCode int
	Message    string
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("holidaze client: booking rejected: unexpected status code %d", e.StatusCode)
	}
	return fmt.Sprintf("holidaze client: booking rejected: %s", e.Message)
}

// Unwrap позволяет проверять отклонение через errors.Is(err, ErrBookingRejected)
func (e *RejectionError) Unwrap() error {
	return ErrBookingRejected
}
