package quote_booking

import (
	"time"

	"github.com/holidaze/booking-gateway/internal/domain"
)

// Request модель запроса расчета стоимости
type Request struct {
	VenueID  string
	DateFrom time.Time
	DateTo   time.Time
	Guests   domain.GuestCounts
}

// Response модель ответа с расчетом стоимости
// Расчет производный: нигде не сохраняется и пересчитывается на каждый запрос
type Response struct {
	VenueID     string
	NightlyRate float64
	Guests      int // суммарное число гостей
	Pricing     domain.PricingResult
}
