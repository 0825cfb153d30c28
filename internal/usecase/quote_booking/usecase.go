package quote_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/holidaze/booking-gateway/internal/domain"
	holidazeClient "github.com/holidaze/booking-gateway/internal/integrations/holidaze"
)

// UseCase use case расчета стоимости проживания
// Выполняет тот же расчет, что и create_booking перед отправкой, чтобы форма
// бронирования показывала итог, совпадающий с итоговым счетом
type UseCase struct {
	client        HolidazeClient
	extraGuestFee float64
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client HolidazeClient, extraGuestFee float64, logger Logger) *UseCase {
	return &UseCase{
		client:        client,
		extraGuestFee: extraGuestFee,
		logger:        logger,
	}
}

// Execute выполняет use case расчета стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем venue ради ставки за ночь и вместимости
	venue, err := uc.client.GetVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, holidazeClient.ErrVenueNotFound) {
			uc.logger.Warn("QuoteBooking: venue id=%s not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get venue id=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Проверяем вместимость venue
	if req.Guests.ExceedsCapacity(venue.MaxGuests) {
		uc.logger.Warn("QuoteBooking: over capacity: venue=%s, occupancy=%d, maxGuests=%d",
			req.VenueID, req.Guests.Occupancy(), venue.MaxGuests)
		return nil, ErrOverCapacity
	}

	// 4. Считаем стоимость
	pricing := domain.ComputeTotal(req.DateFrom, req.DateTo, venue.Price, req.Guests, uc.extraGuestFee)

	uc.logger.Info("QuoteBooking: venue=%s, nights=%d, total=%.2f",
		req.VenueID, pricing.Nights, pricing.Total)

	return &Response{
		VenueID:     req.VenueID,
		NightlyRate: venue.Price,
		Guests:      req.Guests.Total(),
		Pricing:     pricing,
	}, nil
}
