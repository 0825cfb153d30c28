package bookings

import (
	"context"
	"time"

	"github.com/holidaze/booking-gateway/internal/domain"
)

// HolidazeClient интерфейс клиента внешнего Holidaze API
type HolidazeClient interface {
	GetProfileBookings(ctx context.Context, token string, profileName string) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени
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
