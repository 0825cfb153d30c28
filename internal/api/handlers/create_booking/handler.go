package create_booking

import (
	"errors"
	"net/http"

	"github.com/holidaze/booking-gateway/internal/api/handlers"
	"github.com/holidaze/booking-gateway/internal/api/middleware"
	createBooking "github.com/holidaze/booking-gateway/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRequiresLogin        = "требуется авторизация"
	msgOwnerCannotBook      = "владелец не может бронировать собственный venue"
	msgInvalidRange         = "выбранные даты недоступны"
	msgOverCapacity         = "число гостей превышает вместимость venue"
	msgVenueNotFound        = "venue не найден"
	msgSubmissionInProgress = "бронирование уже отправляется, дождитесь результата"
	msgSubmissionRejected   = "внешний сервис отклонил бронирование"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем пользователя из контекста (через middleware Auth)
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user in context")
		handlers.RespondUnauthorized(w, msgRequiresLogin)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(user)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrRequiresLogin):
			h.logger.Warn("POST /bookings - Requires login: venue_id=%s", req.VenueID)
			handlers.RespondUnauthorized(w, msgRequiresLogin)

		case errors.Is(err, createBooking.ErrOwnerCannotBook):
			h.logger.Warn("POST /bookings - Owner cannot book own venue: user=%s, venue_id=%s", user.Name, req.VenueID)
			handlers.RespondForbidden(w, msgOwnerCannotBook)

		case errors.Is(err, createBooking.ErrInvalidRange):
			h.logger.Warn("POST /bookings - Invalid range: user=%s, venue_id=%s, from=%s, to=%s",
				user.Name, req.VenueID, req.DateFrom, req.DateTo)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createBooking.ErrOverCapacity):
			h.logger.Warn("POST /bookings - Over capacity: user=%s, venue_id=%s", user.Name, req.VenueID)
			handlers.RespondBadRequest(w, msgOverCapacity)

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue_id=%s", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrSubmissionInProgress):
			h.logger.Warn("POST /bookings - Submission already in progress: user=%s, venue_id=%s", user.Name, req.VenueID)
			handlers.RespondConflict(w, msgSubmissionInProgress)

		case errors.Is(err, createBooking.ErrSubmissionRejected):
			// Сообщение внешнего API пробрасывается дословно, если оно есть
			message := msgSubmissionRejected
			var rejection *createBooking.SubmissionRejectedError
			if errors.As(err, &rejection) && rejection.Message != "" {
				message = rejection.Message
			}
			h.logger.Warn("POST /bookings - Submission rejected: user=%s, venue_id=%s, reason=%s",
				user.Name, req.VenueID, message)
			handlers.RespondError(w, http.StatusBadGateway, message)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user=%s, venue_id=%s, error=%v", user.Name, req.VenueID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%s, venue_id=%s, error=%v",
				user.Name, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user=%s, venue_id=%s",
		result.BookingID, user.Name, req.VenueID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
