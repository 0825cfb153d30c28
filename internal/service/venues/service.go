package venues

import (
	"context"
	"errors"
	"fmt"

	"github.com/holidaze/booking-gateway/internal/domain"
	holidazeClient "github.com/holidaze/booking-gateway/internal/integrations/holidaze"
	"github.com/holidaze/booking-gateway/internal/service/venues/models"
)

// Service сервис для работы с каталогом venues
// Тонкая прослойка над внешним API: нормализует пагинацию и скрывает детали бронирований
type Service struct {
	client HolidazeClient
	logger Logger
}

// NewService создает новый экземпляр сервиса venues
func NewService(client HolidazeClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// List получает список venues с пагинацией
func (s *Service) List(ctx context.Context, req *models.ListVenuesRequest) (*models.VenueListResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = domain.DefaultVenuesLimit
	}
	if limit > domain.MaxVenuesLimit {
		limit = domain.MaxVenuesLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	s.logger.Info("List: fetching venues, limit=%d, offset=%d", limit, offset)

	venues, err := s.client.ListVenues(ctx, holidazeClient.ListVenuesParams{
		Limit:     limit,
		Offset:    offset,
		Sort:      req.Sort,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		s.logger.Error("List: upstream error: %v", err)
		return nil, fmt.Errorf("%w: List - upstream error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d venues", len(venues))
	return models.FromDomainVenueList(venues), nil
}

// GetByID получает venue по ID
func (s *Service) GetByID(ctx context.Context, venueID string) (*models.VenueResponse, error) {
	if venueID == "" {
		return nil, fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}

	s.logger.Info("GetByID: fetching venue id=%s", venueID)

	venue, err := s.client.GetVenue(ctx, venueID)
	if err != nil {
		if errors.Is(err, holidazeClient.ErrVenueNotFound) {
			s.logger.Warn("GetByID: venue id=%s not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetByID: upstream error for venue id=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: GetByID - upstream error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched venue id=%s", venueID)
	return models.FromDomainVenue(venue), nil
}
