package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/holidaze/booking-gateway/internal/api/handlers"
	"github.com/holidaze/booking-gateway/internal/domain"
	getAvailability "github.com/holidaze/booking-gateway/internal/usecase/get_availability"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgIncompleteRange = "параметры from и to указываются только вместе"
	msgVenueNotFound   = "venue не найден"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/availability
// Опциональные query параметры from и to задают кандидатский диапазон для проверки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID := vars["venueId"]

	useCaseReq := &getAvailability.Request{VenueID: venueID}

	// Парсим опциональный кандидатский диапазон
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if (fromStr == "") != (toStr == "") {
		h.logger.Warn("GET /venues/{venueId}/availability - Incomplete range: venue_id=%s", venueID)
		handlers.RespondBadRequest(w, msgIncompleteRange)
		return
	}

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /venues/{venueId}/availability - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /venues/{venueId}/availability - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		useCaseReq.From = &from
		useCaseReq.To = &to
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{venueId}/availability - Venue not found: venue_id=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /venues/{venueId}/availability - Invalid input: venue_id=%s, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /venues/{venueId}/availability - Failed to get availability: venue_id=%s, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{venueId}/availability - Availability retrieved: venue_id=%s, blocked_days=%d",
		venueID, len(result.BlockedDays))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
