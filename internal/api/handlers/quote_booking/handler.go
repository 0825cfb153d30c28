package quote_booking

import (
	"errors"
	"net/http"

	"github.com/holidaze/booking-gateway/internal/api/handlers"
	quoteBooking "github.com/holidaze/booking-gateway/internal/usecase/quote_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgVenueNotFound      = "venue не найден"
	msgOverCapacity       = "число гостей превышает вместимость venue"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/quote - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings/quote - Venue not found: venue_id=%s", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, quoteBooking.ErrOverCapacity):
			h.logger.Warn("POST /bookings/quote - Over capacity: venue_id=%s", req.VenueID)
			handlers.RespondBadRequest(w, msgOverCapacity)

		case errors.Is(err, quoteBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/quote - Invalid input: venue_id=%s, error=%v", req.VenueID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/quote - Failed to quote booking: venue_id=%s, error=%v", req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/quote - Quote calculated: venue_id=%s, nights=%d, total=%.2f",
		req.VenueID, result.Pricing.Nights, result.Pricing.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
