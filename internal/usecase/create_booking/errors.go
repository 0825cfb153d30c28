package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrRequiresLogin возвращается при попытке бронирования без аутентификации
	ErrRequiresLogin = errors.New("create_booking: login required")

	// ErrOwnerCannotBook возвращается, когда пользователь бронирует собственный venue
	ErrOwnerCannotBook = errors.New("create_booking: venue owner cannot book own venue")

	// ErrInvalidRange возвращается, когда выбранные даты в прошлом, перевернуты
	// или пересекаются с существующими бронированиями
	ErrInvalidRange = errors.New("create_booking: selected date range is not available")

	// ErrOverCapacity возвращается, когда число гостей превышает вместимость venue
	ErrOverCapacity = errors.New("create_booking: guest count exceeds venue capacity")

	// ErrSubmissionRejected возвращается, когда внешний API отклонил бронирование
	ErrSubmissionRejected = errors.New("create_booking: submission rejected")

	// ErrSubmissionInProgress возвращается при повторной отправке, пока предыдущая
	// для той же пары (пользователь, venue) еще не завершилась
	ErrSubmissionInProgress = errors.New("create_booking: submission already in progress")

	// ErrVenueNotFound возвращается, когда venue не найден
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// SubmissionRejectedError отклонение с сообщением внешнего API
// Сообщение сервера показывается пользователю дословно, если оно есть
type SubmissionRejectedError struct {
	Message string
}

func (e *SubmissionRejectedError) Error() string {
	if e.Message == "" {
		return ErrSubmissionRejected.Error()
	}
	return fmt.Sprintf("%v: %s", ErrSubmissionRejected, e.Message)
}

// Unwrap позволяет проверять отклонение через errors.Is(err, ErrSubmissionRejected)
func (e *SubmissionRejectedError) Unwrap() error {
	return ErrSubmissionRejected
}
