package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/holidaze/booking-gateway/internal/domain"
	"github.com/holidaze/booking-gateway/internal/infra/cache/availability"
	holidazeClient "github.com/holidaze/booking-gateway/internal/integrations/holidaze"
)

// UseCase use case создания бронирования
// Воспроизводит workflow Idle → Validating → Submitting → Succeeded | Failed:
// проверки выполняются строго по порядку, отправка во внешний API происходит
// только после прохождения всех проверок, повторных попыток нет
type UseCase struct {
	client        HolidazeClient
	cache         AvailabilityCache
	timeProvider  TimeProvider
	logger        Logger
	extraGuestFee float64

	// Гейт повторной отправки: одна незавершенная отправка на пару (пользователь, venue)
	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client HolidazeClient,
	cache AvailabilityCache,
	extraGuestFee float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:        client,
		cache:         cache,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
		extraGuestFee: extraGuestFee,
		inflight:      make(map[string]struct{}),
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем аутентификацию
	if !req.User.IsAuthenticated() {
		uc.logger.Warn("CreateBooking: unauthenticated booking attempt for venue=%s", req.VenueID)
		return nil, ErrRequiresLogin
	}

	uc.logger.Info("CreateBooking: user=%s, venue=%s, from=%s, to=%s, guests=%d",
		req.User.Name, req.VenueID,
		req.DateFrom.Format(domain.DateFormat), req.DateTo.Format(domain.DateFormat),
		req.Guests.Total())

	// 3. Гейт повторной отправки: вторая отправка для той же пары
	// (пользователь, venue) падает сразу, пока первая не завершилась
	key := submissionKey(req.User.Name, req.VenueID)
	if !uc.tryAcquire(key) {
		uc.logger.Warn("CreateBooking: duplicate submission gated: user=%s, venue=%s", req.User.Name, req.VenueID)
		return nil, ErrSubmissionInProgress
	}
	defer uc.release(key)

	// 4. Получаем текущее время
	now := uc.timeProvider.Now()

	// 5. Получаем venue вместе с владельцем и существующими бронированиями
	venue, err := uc.client.GetVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, holidazeClient.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue id=%s not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to get venue id=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 6. Владелец не может бронировать собственный venue
	// Проверяется до какой-либо отправки бронирования во внешний API
	if venue.IsOwnedBy(req.User.Name) {
		uc.logger.Warn("CreateBooking: owner booking attempt: user=%s, venue=%s", req.User.Name, req.VenueID)
		return nil, ErrOwnerCannotBook
	}

	// 7. Строим набор занятых дней: бронирования venue плюс локальные патчи
	// из кеша (бронирования, подтвержденные этим шлюзом, но еще не
	// перечитанные из внешнего API)
	blocked := venue.BlockedDays()
	if cached, err := uc.cache.Get(ctx, req.VenueID); err == nil {
		blocked.Union(cached)
	} else if !errors.Is(err, availability.ErrNotFound) {
		uc.logger.Warn("CreateBooking: availability cache read failed for venue=%s: %v", req.VenueID, err)
	}

	// 8. Проверяем доступность выбранного диапазона
	if !domain.IsRangeAvailable(blocked, req.DateFrom, req.DateTo, now) {
		uc.logger.Warn("CreateBooking: range not available: venue=%s, from=%s, to=%s",
			req.VenueID, req.DateFrom.Format(domain.DateFormat), req.DateTo.Format(domain.DateFormat))
		return nil, ErrInvalidRange
	}

	// 9. Проверяем вместимость venue (взрослые + дети)
	if req.Guests.ExceedsCapacity(venue.MaxGuests) {
		uc.logger.Warn("CreateBooking: over capacity: venue=%s, occupancy=%d, maxGuests=%d",
			req.VenueID, req.Guests.Occupancy(), venue.MaxGuests)
		return nil, ErrOverCapacity
	}

	// 10. Считаем стоимость на момент отправки
	pricing := domain.ComputeTotal(req.DateFrom, req.DateTo, venue.Price, req.Guests, uc.extraGuestFee)

	// 11. Отправляем бронирование во внешний API
	// guests - суммарное число: внешний API не различает категории гостей
	booking, err := uc.client.CreateBooking(ctx, req.User.Token, &holidazeClient.CreateBookingRequest{
		VenueID:  req.VenueID,
		DateFrom: toISO(req.DateFrom),
		DateTo:   toISO(req.DateTo),
		Guests:   req.Guests.Total(),
	})
	if err != nil {
		return nil, uc.mapSubmissionError(req, err)
	}

	// 12. Применяем оптимистичный локальный патч: забронированные дни становятся
	// занятыми без ожидания рефетча из внешнего API
	interval, intervalErr := domain.NewDateInterval(req.DateFrom, req.DateTo)
	if intervalErr == nil {
		if err := uc.cache.Merge(ctx, req.VenueID, interval); err != nil {
			// Патч не критичен: следующее чтение перестроит набор из внешнего API
			uc.logger.Warn("CreateBooking: failed to merge blocked days for venue=%s: %v", req.VenueID, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s: user=%s, venue=%s, total=%.2f",
		booking.ID, req.User.Name, req.VenueID, pricing.Total)

	return &Response{
		BookingID: booking.ID,
		VenueID:   req.VenueID,
		DateFrom:  booking.DateFrom,
		DateTo:    booking.DateTo,
		Guests:    booking.Guests,
		Pricing:   pricing,
		CreatedAt: booking.Created,
	}, nil
}

// mapSubmissionError конвертирует ошибку отправки в ошибку use case
func (uc *UseCase) mapSubmissionError(req *Request, err error) error {
	switch {
	case errors.Is(err, holidazeClient.ErrUnauthorized):
		uc.logger.Warn("CreateBooking: token rejected by upstream: user=%s", req.User.Name)
		return ErrRequiresLogin

	case errors.Is(err, holidazeClient.ErrVenueNotFound):
		uc.logger.Warn("CreateBooking: venue id=%s disappeared during submission", req.VenueID)
		return ErrVenueNotFound

	case errors.Is(err, holidazeClient.ErrBookingRejected):
		// Показываем сообщение сервера дословно, если оно есть
		var rejection *holidazeClient.RejectionError
		msg := ""
		if errors.As(err, &rejection) {
			msg = rejection.Message
		}
		uc.logger.Warn("CreateBooking: submission rejected: user=%s, venue=%s, message=%q",
			req.User.Name, req.VenueID, msg)
		return &SubmissionRejectedError{Message: msg}

	default:
		// Сетевые и прочие ошибки - тоже отклонение отправки, без сообщения
		uc.logger.Error("CreateBooking: submission failed: user=%s, venue=%s, error=%v",
			req.User.Name, req.VenueID, err)
		return &SubmissionRejectedError{}
	}
}

func (uc *UseCase) tryAcquire(key string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, busy := uc.inflight[key]; busy {
		return false
	}
	uc.inflight[key] = struct{}{}
	return true
}

func (uc *UseCase) release(key string) {
	uc.mu.Lock()
	delete(uc.inflight, key)
	uc.mu.Unlock()
}

func submissionKey(userName, venueID string) string {
	return strings.ToLower(userName) + "|" + venueID
}

// toISO форматирует дату в ISO-8601 для внешнего API
func toISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
