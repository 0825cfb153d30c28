package get_availability

import (
	"time"

	"github.com/holidaze/booking-gateway/internal/domain"
)

// Request модель запроса занятых дней venue
// From/To - опциональный кандидатский диапазон: если указаны оба,
// в ответе будет результат проверки его доступности
type Request struct {
	VenueID string
	From    *time.Time
	To      *time.Time
}

// RangeCheck результат проверки кандидатского диапазона
type RangeCheck struct {
	From      time.Time
	To        time.Time
	Available bool
}

// Response модель ответа с занятыми днями venue
type Response struct {
	VenueID     string
	BlockedDays []domain.DayKey // отсортированы по возрастанию
	Checked     *RangeCheck     // nil, если кандидатский диапазон не запрашивался
}
