package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/holidaze/booking-gateway/internal/domain"
	holidazeClient "github.com/holidaze/booking-gateway/internal/integrations/holidaze"
	"github.com/holidaze/booking-gateway/internal/service/bookings/models"
)

// Service сервис для работы с историей бронирований пользователя
type Service struct {
	client       HolidazeClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(client HolidazeClient, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		client:       client,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetUserBookings получает историю бронирований пользователя
// Проверяет права доступа - пользователь может видеть только свои бронирования
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	if req.ProfileName == "" {
		return nil, fmt.Errorf("%w: profileName is required", ErrInvalidInput)
	}

	if !req.User.IsAuthenticated() {
		s.logger.Warn("GetUserBookings: unauthenticated request for profile=%s", req.ProfileName)
		return nil, ErrRequiresLogin
	}

	// Проверяем права доступа
	if !strings.EqualFold(req.User.Name, req.ProfileName) {
		s.logger.Warn("GetUserBookings: access denied for user=%s to profile=%s", req.User.Name, req.ProfileName)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetUserBookings: fetching bookings for profile=%s", req.ProfileName)

	bookings, err := s.client.GetProfileBookings(ctx, req.User.Token, req.ProfileName)
	if err != nil {
		switch {
		case errors.Is(err, holidazeClient.ErrProfileNotFound):
			s.logger.Warn("GetUserBookings: profile=%s not found", req.ProfileName)
			return nil, ErrProfileNotFound
		case errors.Is(err, holidazeClient.ErrUnauthorized):
			s.logger.Warn("GetUserBookings: token rejected for profile=%s", req.ProfileName)
			return nil, ErrRequiresLogin
		default:
			s.logger.Error("GetUserBookings: upstream error for profile=%s: %v", req.ProfileName, err)
			return nil, fmt.Errorf("%w: GetUserBookings - upstream error: %v", ErrInternal, err)
		}
	}

	today := s.timeProvider.Now()

	if req.UpcomingOnly {
		bookings = filterUpcoming(bookings, today)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for profile=%s", len(bookings), req.ProfileName)
	return models.FromDomainBookingList(bookings, today), nil
}

// filterUpcoming оставляет только бронирования, которые ещё не закончились
func filterUpcoming(bookings []*domain.Booking, today time.Time) []*domain.Booking {
	upcoming := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsUpcoming(today) {
			upcoming = append(upcoming, b)
		}
	}
	return upcoming
}
