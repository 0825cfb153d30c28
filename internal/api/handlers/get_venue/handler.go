package get_venue

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/holidaze/booking-gateway/internal/api/handlers"
	"github.com/holidaze/booking-gateway/internal/service/venues"
)

const (
	msgMissingVenueID = "отсутствует ID venue"
	msgNotFound       = "venue не найден"
)

type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID := vars["venueId"]
	if venueID == "" {
		h.logger.Warn("GET /venues/{venueId} - Missing venue ID")
		handlers.RespondBadRequest(w, msgMissingVenueID)
		return
	}

	venue, err := h.service.GetByID(r.Context(), venueID)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{venueId} - Venue not found: venue_id=%s", venueID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, venues.ErrInvalidInput):
			h.logger.Warn("GET /venues/{venueId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingVenueID)

		default:
			h.logger.Error("GET /venues/{venueId} - Failed to get venue: venue_id=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{venueId} - Venue retrieved successfully: venue_id=%s", venueID)
	handlers.RespondJSON(w, http.StatusOK, venue)
}
