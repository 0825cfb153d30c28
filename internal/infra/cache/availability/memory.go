package availability

import (
	"context"
	"sync"
	"time"

	"github.com/holidaze/booking-gateway/internal/domain"
)

type memoryEntry struct {
	days      domain.BlockedDays
	expiresAt time.Time
}

// MemoryStore in-memory реализация кеша занятых дней
// Достаточна для шлюза в один инстанс; для нескольких инстансов есть RedisStore
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	nowFunc func() time.Time
}

// NewMemoryStore создает in-memory кеш с указанным TTL
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// Get возвращает закешированный набор занятых дней
func (s *MemoryStore) Get(_ context.Context, venueID string) (domain.BlockedDays, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[venueID]
	if !ok || s.nowFunc().After(entry.expiresAt) {
		return nil, ErrNotFound
	}

	// Копируем под блокировкой: Merge мутирует entry.days под write lock,
	// а копию за пределами кеша читают уже без блокировки
	copied := domain.NewBlockedDays()
	copied.Union(entry.days)

	return copied, nil
}

// Set сохраняет набор занятых дней с TTL
func (s *MemoryStore) Set(_ context.Context, venueID string, days domain.BlockedDays) error {
	stored := domain.NewBlockedDays()
	stored.Union(days)

	s.mu.Lock()
	s.entries[venueID] = memoryEntry{
		days:      stored,
		expiresAt: s.nowFunc().Add(s.ttl),
	}
	s.mu.Unlock()

	return nil
}

// Merge добавляет дни интервала в существующую запись
// Если записи нет или она истекла - no-op, следующее чтение перестроит набор
func (s *MemoryStore) Merge(_ context.Context, venueID string, interval domain.DateInterval) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[venueID]
	if !ok || s.nowFunc().After(entry.expiresAt) {
		return nil
	}

	entry.days.Merge(interval)
	s.entries[venueID] = entry

	return nil
}

// Invalidate удаляет запись
func (s *MemoryStore) Invalidate(_ context.Context, venueID string) error {
	s.mu.Lock()
	delete(s.entries, venueID)
	s.mu.Unlock()

	return nil
}
