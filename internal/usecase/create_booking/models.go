package create_booking

import (
	"time"

	"github.com/holidaze/booking-gateway/internal/domain"
	"github.com/holidaze/booking-gateway/internal/session"
)

// Request модель запроса на создание бронирования
type Request struct {
	User     *session.User      // Аутентифицированный пользователь (nil = не залогинен)
	VenueID  string             // ID venue
	DateFrom time.Time          // Дата заезда
	DateTo   time.Time          // Дата выезда
	Guests   domain.GuestCounts // Состав гостей
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID string    // ID созданного бронирования во внешнем API
	VenueID   string    // ID venue
	DateFrom  time.Time // Дата заезда
	DateTo    time.Time // Дата выезда
	Guests    int       // Суммарное число гостей, отправленное во внешний API

	// Расчет стоимости на момент отправки
	Pricing domain.PricingResult

	CreatedAt time.Time // Время создания во внешнем API
}
