package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/holidaze/booking-gateway/internal/api/handlers"
	"github.com/holidaze/booking-gateway/internal/api/middleware"
	"github.com/holidaze/booking-gateway/internal/service/bookings"
	"github.com/holidaze/booking-gateway/internal/service/bookings/models"
)

const (
	msgMissingProfileName = "отсутствует имя профиля"
	msgRequiresLogin      = "требуется авторизация"
	msgForbidden          = "доступ запрещен"
	msgProfileNotFound    = "профиль не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/profiles/{profileName}/bookings
// Query параметр upcoming=true оставляет только незавершенные бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	profileName := vars["profileName"]
	if profileName == "" {
		h.logger.Warn("GET /profiles/{profileName}/bookings - Missing profile name")
		handlers.RespondBadRequest(w, msgMissingProfileName)
		return
	}

	// Получаем пользователя из контекста (через middleware Auth)
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("GET /profiles/{profileName}/bookings - Missing user in context")
		handlers.RespondUnauthorized(w, msgRequiresLogin)
		return
	}

	serviceReq := &models.GetUserBookingsRequest{
		User:         user,
		ProfileName:  profileName,
		UpcomingOnly: r.URL.Query().Get("upcoming") == "true",
	}

	result, err := h.service.GetUserBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrRequiresLogin):
			h.logger.Warn("GET /profiles/{profileName}/bookings - Requires login: profile=%s", profileName)
			handlers.RespondUnauthorized(w, msgRequiresLogin)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /profiles/{profileName}/bookings - Access denied: user=%s, profile=%s",
				user.Name, profileName)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrProfileNotFound):
			h.logger.Warn("GET /profiles/{profileName}/bookings - Profile not found: profile=%s", profileName)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /profiles/{profileName}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingProfileName)

		default:
			h.logger.Error("GET /profiles/{profileName}/bookings - Failed to get bookings: profile=%s, error=%v",
				profileName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /profiles/{profileName}/bookings - Bookings retrieved successfully: profile=%s, count=%d",
		profileName, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
