package list_venues

import (
	"net/http"
	"strconv"

	"github.com/holidaze/booking-gateway/internal/api/handlers"
	"github.com/holidaze/booking-gateway/internal/service/venues/models"
)

const (
	msgInvalidLimit  = "некорректное значение limit"
	msgInvalidOffset = "некорректное значение offset"
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

// Handle GET /api/v1/venues
// Query параметры: limit, offset, sort, sortOrder
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq := &models.ListVenuesRequest{
		Sort:      query.Get("sort"),
		SortOrder: query.Get("sortOrder"),
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			h.logger.Warn("GET /venues - Invalid limit: %s", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		serviceReq.Limit = limit
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			h.logger.Warn("GET /venues - Invalid offset: %s", offsetStr)
			handlers.RespondBadRequest(w, msgInvalidOffset)
			return
		}
		serviceReq.Offset = offset
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /venues - Failed to list venues: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues - Venues retrieved successfully: count=%d", len(result.Venues))
	handlers.RespondJSON(w, http.StatusOK, result)
}
