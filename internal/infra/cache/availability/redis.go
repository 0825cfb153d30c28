package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/holidaze/booking-gateway/internal/domain"
)

const redisKeyPrefix = "availability:"

// RedisStore реализация кеша занятых дней поверх Redis
// Используется при нескольких инстансах шлюза: оптимистичный патч после
// бронирования становится виден всем инстансам сразу
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает Redis-кеш с указанным TTL
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func redisKey(venueID string) string {
	return redisKeyPrefix + venueID
}

// Get возвращает закешированный набор занятых дней
func (s *RedisStore) Get(ctx context.Context, venueID string) (domain.BlockedDays, error) {
	members, err := s.client.SMembers(ctx, redisKey(venueID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - smembers: %v", ErrInternal, err)
	}

	// Пустой set в Redis неотличим от отсутствующего ключа
	if len(members) == 0 {
		return nil, ErrNotFound
	}

	days := domain.NewBlockedDays()
	for _, member := range members {
		days[domain.DayKey(member)] = struct{}{}
	}

	return days, nil
}

// Set сохраняет набор занятых дней с TTL
func (s *RedisStore) Set(ctx context.Context, venueID string, days domain.BlockedDays) error {
	key := redisKey(venueID)

	members := make([]interface{}, 0, len(days))
	for _, day := range days.Days() {
		members = append(members, string(day))
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(members) > 0 {
		pipe.SAdd(ctx, key, members...)
	}
	pipe.Expire(ctx, key, s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: Set - pipeline: %v", ErrInternal, err)
	}

	return nil
}

// Merge добавляет дни интервала в существующую запись
// Если ключа нет, патч не применяется - TTL существующей записи сохраняется
func (s *RedisStore) Merge(ctx context.Context, venueID string, interval domain.DateInterval) error {
	key := redisKey(venueID)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("%w: Merge - exists: %v", ErrInternal, err)
	}
	if exists == 0 {
		return nil
	}

	members := make([]interface{}, 0)
	for _, day := range interval.Days() {
		members = append(members, string(day))
	}
	if len(members) == 0 {
		return nil
	}

	if err := s.client.SAdd(ctx, key, members...).Err(); err != nil {
		return fmt.Errorf("%w: Merge - sadd: %v", ErrInternal, err)
	}

	return nil
}

// Invalidate удаляет запись
func (s *RedisStore) Invalidate(ctx context.Context, venueID string) error {
	if err := s.client.Del(ctx, redisKey(venueID)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - del: %v", ErrInternal, err)
	}
	return nil
}
