package quote_booking

import (
	"context"

	"github.com/holidaze/booking-gateway/internal/domain"
)

// HolidazeClient интерфейс клиента внешнего Holidaze API
type HolidazeClient interface {
	GetVenue(ctx context.Context, venueID string) (*domain.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
