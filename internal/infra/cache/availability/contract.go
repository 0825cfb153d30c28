package availability

import (
	"context"

	"github.com/holidaze/booking-gateway/internal/domain"
)

// Store кеш занятых дней по venue
//
// Источник истины - внешний API: кеш живет с TTL и полностью перестраивается
// при следующем чтении после истечения. Merge - явный шаг "применить локальный
// патч" после успешного бронирования: занятые дни добавляются без рефетча.
// Merge патчит только существующую запись - если записи нет, следующее чтение
// и так получит свежие данные, уже включающие новое бронирование.
type Store interface {
	// Get возвращает закешированный набор занятых дней
	// Возвращает ErrNotFound, если записи нет или она истекла
	Get(ctx context.Context, venueID string) (domain.BlockedDays, error)

	// Set сохраняет набор занятых дней с TTL
	Set(ctx context.Context, venueID string, days domain.BlockedDays) error

	// Merge добавляет дни интервала в существующую запись (аддитивный патч)
	Merge(ctx context.Context, venueID string, interval domain.DateInterval) error

	// Invalidate удаляет запись
	Invalidate(ctx context.Context, venueID string) error
}
