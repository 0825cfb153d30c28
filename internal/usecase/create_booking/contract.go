package create_booking

import (
	"context"
	"time"

	"github.com/holidaze/booking-gateway/internal/domain"
	"github.com/holidaze/booking-gateway/internal/integrations/holidaze"
)

// HolidazeClient интерфейс клиента внешнего Holidaze API
type HolidazeClient interface {
	GetVenue(ctx context.Context, venueID string) (*domain.Venue, error)
	CreateBooking(ctx context.Context, token string, req *holidaze.CreateBookingRequest) (*domain.Booking, error)
}

// AvailabilityCache интерфейс кеша занятых дней
// Merge вызывается только после подтвержденного успешного бронирования
type AvailabilityCache interface {
	Get(ctx context.Context, venueID string) (domain.BlockedDays, error)
	Merge(ctx context.Context, venueID string, interval domain.DateInterval) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
