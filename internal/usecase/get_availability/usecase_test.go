package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holidaze/booking-gateway/internal/domain"
	"github.com/holidaze/booking-gateway/internal/infra/cache/availability"
	holidazeClient "github.com/holidaze/booking-gateway/internal/integrations/holidaze"
	"github.com/holidaze/booking-gateway/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (p fixedTime) Now() time.Time { return p.now }

type stubClient struct {
	venue    *domain.Venue
	venueErr error
	calls    int
}

func (c *stubClient) GetVenue(_ context.Context, _ string) (*domain.Venue, error) {
	c.calls++
	if c.venueErr != nil {
		return nil, c.venueErr
	}
	return c.venue, nil
}

type stubCache struct {
	days   domain.BlockedDays
	getErr error
	stored domain.BlockedDays
}

func (c *stubCache) Get(_ context.Context, _ string) (domain.BlockedDays, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.days, nil
}

func (c *stubCache) Set(_ context.Context, _ string, days domain.BlockedDays) error {
	c.stored = days
	return nil
}

type countingMetrics struct {
	hits   int
	misses int
}

func (m *countingMetrics) CacheHit()  { m.hits++ }
func (m *countingMetrics) CacheMiss() { m.misses++ }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(client *stubClient, cache *stubCache, metrics *countingMetrics) *UseCase {
	var m CacheMetrics
	if metrics != nil {
		m = metrics
	}
	uc := NewUseCase(client, cache, m, nopLogger{})
	uc.timeProvider = fixedTime{now: date(2024, 5, 1)}
	return uc
}

func TestExecuteCacheMiss(t *testing.T) {
	client := &stubClient{
		venue: &domain.Venue{
			ID: "venue-1",
			Bookings: []domain.Booking{
				{DateFrom: date(2024, 6, 1), DateTo: date(2024, 6, 3)},
			},
		},
	}
	cache := &stubCache{getErr: availability.ErrNotFound}
	metrics := &countingMetrics{}
	uc := newTestUseCase(client, cache, metrics)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: "venue-1"})
	require.NoError(t, err)

	assert.Equal(t, []domain.DayKey{"2024-06-01", "2024-06-02", "2024-06-03"}, resp.BlockedDays)
	assert.Nil(t, resp.Checked)

	// Набор перестроен из внешнего API и закеширован
	assert.Equal(t, 1, client.calls)
	assert.Len(t, cache.stored, 3)
	assert.Equal(t, 1, metrics.misses)
	assert.Zero(t, metrics.hits)
}

func TestExecuteCacheHit(t *testing.T) {
	cached := domain.ExpandIntervals([]domain.DateInterval{
		{From: date(2024, 6, 1), To: date(2024, 6, 2)},
	})

	client := &stubClient{}
	metrics := &countingMetrics{}
	uc := newTestUseCase(client, &stubCache{days: cached}, metrics)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: "venue-1"})
	require.NoError(t, err)

	assert.Len(t, resp.BlockedDays, 2)

	// Внешний API не вызывается при попадании в кеш
	assert.Zero(t, client.calls)
	assert.Equal(t, 1, metrics.hits)
}

func TestExecuteCandidateRange(t *testing.T) {
	cached := domain.ExpandIntervals([]domain.DateInterval{
		{From: date(2024, 6, 1), To: date(2024, 6, 5)},
	})

	t.Run("conflicting range is unavailable", func(t *testing.T) {
		uc := newTestUseCase(&stubClient{}, &stubCache{days: cached}, nil)

		resp, err := uc.Execute(context.Background(), &Request{
			VenueID: "venue-1",
			From:    ptr.Ptr(date(2024, 6, 4)),
			To:      ptr.Ptr(date(2024, 6, 6)),
		})
		require.NoError(t, err)

		require.NotNil(t, resp.Checked)
		assert.False(t, resp.Checked.Available)
	})

	t.Run("clear range is available", func(t *testing.T) {
		uc := newTestUseCase(&stubClient{}, &stubCache{days: cached}, nil)

		resp, err := uc.Execute(context.Background(), &Request{
			VenueID: "venue-1",
			From:    ptr.Ptr(date(2024, 6, 6)),
			To:      ptr.Ptr(date(2024, 6, 8)),
		})
		require.NoError(t, err)

		require.NotNil(t, resp.Checked)
		assert.True(t, resp.Checked.Available)
	})

	t.Run("past range is unavailable even with empty calendar", func(t *testing.T) {
		uc := newTestUseCase(&stubClient{}, &stubCache{days: domain.NewBlockedDays()}, nil)

		resp, err := uc.Execute(context.Background(), &Request{
			VenueID: "venue-1",
			From:    ptr.Ptr(date(2024, 4, 1)),
			To:      ptr.Ptr(date(2024, 4, 3)),
		})
		require.NoError(t, err)

		require.NotNil(t, resp.Checked)
		assert.False(t, resp.Checked.Available)
	})
}

func TestExecuteValidation(t *testing.T) {
	uc := newTestUseCase(&stubClient{}, &stubCache{}, nil)

	t.Run("missing venue id", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("half-open candidate range", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			VenueID: "venue-1",
			From:    ptr.Ptr(date(2024, 6, 1)),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecuteVenueNotFound(t *testing.T) {
	client := &stubClient{venueErr: holidazeClient.ErrVenueNotFound}
	uc := newTestUseCase(client, &stubCache{getErr: availability.ErrNotFound}, nil)

	_, err := uc.Execute(context.Background(), &Request{VenueID: "missing"})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}
