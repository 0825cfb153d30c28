package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/holidaze/booking-gateway/internal/domain"
	"github.com/holidaze/booking-gateway/internal/infra/cache/availability"
	holidazeClient "github.com/holidaze/booking-gateway/internal/integrations/holidaze"
)

// UseCase use case получения занятых дней venue
// Обслуживает календарь выбора дат: сначала пробует кеш, при промахе
// перечитывает бронирования venue из внешнего API и перестраивает набор
type UseCase struct {
	client       HolidazeClient
	cache        AvailabilityCache
	metrics      CacheMetrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если сбор метрик выключен
func NewUseCase(
	client HolidazeClient,
	cache AvailabilityCache,
	metrics CacheMetrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:       client,
		cache:        cache,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения занятых дней
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Пробуем кеш: он содержит и оптимистичные патчи недавних бронирований
	blocked, err := uc.cache.Get(ctx, req.VenueID)
	switch {
	case err == nil:
		uc.logger.Info("GetAvailability: cache hit for venue=%s, %d blocked days", req.VenueID, len(blocked))
		uc.cacheHit()

	case errors.Is(err, availability.ErrNotFound):
		uc.cacheMiss()

		// 3. Промах: перечитываем бронирования venue из внешнего API
		venue, err := uc.client.GetVenue(ctx, req.VenueID)
		if err != nil {
			if errors.Is(err, holidazeClient.ErrVenueNotFound) {
				uc.logger.Warn("GetAvailability: venue id=%s not found", req.VenueID)
				return nil, ErrVenueNotFound
			}
			uc.logger.Error("GetAvailability: failed to get venue id=%s: %v", req.VenueID, err)
			return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
		}

		// 4. Перестраиваем набор занятых дней и кешируем его
		blocked = venue.BlockedDays()
		if err := uc.cache.Set(ctx, req.VenueID, blocked); err != nil {
			// Кеширование не критично для ответа
			uc.logger.Warn("GetAvailability: failed to cache blocked days for venue=%s: %v", req.VenueID, err)
		}

		uc.logger.Info("GetAvailability: rebuilt %d blocked days for venue=%s from %d bookings",
			len(blocked), req.VenueID, len(venue.Bookings))

	default:
		uc.logger.Error("GetAvailability: cache read failed for venue=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: cache read failed: %v", ErrInternal, err)
	}

	resp := &Response{
		VenueID:     req.VenueID,
		BlockedDays: blocked.Days(),
	}

	// 5. Проверяем кандидатский диапазон, если он запрошен
	if req.From != nil && req.To != nil {
		now := uc.timeProvider.Now()
		resp.Checked = &RangeCheck{
			From:      *req.From,
			To:        *req.To,
			Available: domain.IsRangeAvailable(blocked, *req.From, *req.To, now),
		}
	}

	return resp, nil
}

func (uc *UseCase) cacheHit() {
	if uc.metrics != nil {
		uc.metrics.CacheHit()
	}
}

func (uc *UseCase) cacheMiss() {
	if uc.metrics != nil {
		uc.metrics.CacheMiss()
	}
}
