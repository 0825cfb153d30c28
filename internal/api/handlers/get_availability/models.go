package get_availability

import (
	"github.com/holidaze/booking-gateway/internal/domain"
	getAvailability "github.com/holidaze/booking-gateway/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	VenueID     string              `json:"venueId"`
	BlockedDays []string            `json:"blockedDays"` // отсортированы по возрастанию
	Checked     *RangeCheckResponse `json:"checked,omitempty"`
}

// RangeCheckResponse результат проверки кандидатского диапазона
type RangeCheckResponse struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]string, len(resp.BlockedDays))
	for i, day := range resp.BlockedDays {
		days[i] = string(day)
	}

	result := &AvailabilityResponse{
		VenueID:     resp.VenueID,
		BlockedDays: days,
	}

	if resp.Checked != nil {
		result.Checked = &RangeCheckResponse{
			From:      resp.Checked.From.Format(domain.DateFormat),
			To:        resp.Checked.To.Format(domain.DateFormat),
			Available: resp.Checked.Available,
		}
	}

	return result
}
