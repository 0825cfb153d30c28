package venues

import (
	"context"

	"github.com/holidaze/booking-gateway/internal/domain"
	"github.com/holidaze/booking-gateway/internal/integrations/holidaze"
)

// HolidazeClient интерфейс клиента внешнего Holidaze API
type HolidazeClient interface {
	GetVenue(ctx context.Context, venueID string) (*domain.Venue, error)
	ListVenues(ctx context.Context, params holidaze.ListVenuesParams) ([]*domain.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
