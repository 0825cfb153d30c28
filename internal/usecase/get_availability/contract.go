package get_availability

import (
	"context"
	"time"

	"github.com/holidaze/booking-gateway/internal/domain"
)

// HolidazeClient интерфейс клиента внешнего Holidaze API
type HolidazeClient interface {
	GetVenue(ctx context.Context, venueID string) (*domain.Venue, error)
}

// AvailabilityCache интерфейс кеша занятых дней
type AvailabilityCache interface {
	Get(ctx context.Context, venueID string) (domain.BlockedDays, error)
	Set(ctx context.Context, venueID string, days domain.BlockedDays) error
}

// CacheMetrics интерфейс метрик кеша (может быть nil при выключенных метриках)
type CacheMetrics interface {
	CacheHit()
	CacheMiss()
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
