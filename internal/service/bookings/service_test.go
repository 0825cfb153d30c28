package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holidaze/booking-gateway/internal/domain"
	holidazeClient "github.com/holidaze/booking-gateway/internal/integrations/holidaze"
	"github.com/holidaze/booking-gateway/internal/service/bookings/models"
	"github.com/holidaze/booking-gateway/internal/session"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubClient struct {
	bookings []*domain.Booking
	err      error
	token    string
	profile  string
	calls    int
}

func (s *stubClient) GetProfileBookings(_ context.Context, token, profileName string) ([]*domain.Booking, error) {
	s.calls++
	s.token = token
	s.profile = profileName
	if s.err != nil {
		return nil, s.err
	}
	return s.bookings, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetUserBookings_Success(t *testing.T) {
	now := day(2024, time.May, 1)
	client := &stubClient{bookings: []*domain.Booking{
		{ID: "b-1", VenueID: "v-1", DateFrom: day(2024, time.April, 1), DateTo: day(2024, time.April, 3), Guests: 2},
		{ID: "b-2", VenueID: "v-2", DateFrom: day(2024, time.June, 10), DateTo: day(2024, time.June, 12), Guests: 1},
	}}
	svc := NewService(client, fixedTime{now: now}, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		User:        &session.User{Name: "alice", Token: "tok-123"},
		ProfileName: "alice",
	})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "tok-123", client.token)
	assert.Equal(t, "alice", client.profile)
	assert.False(t, resp.Bookings[0].Upcoming)
	assert.True(t, resp.Bookings[1].Upcoming)
	assert.Equal(t, "2024-06-10", resp.Bookings[1].DateFrom)
}

func TestGetUserBookings_UpcomingOnly(t *testing.T) {
	now := day(2024, time.May, 1)
	client := &stubClient{bookings: []*domain.Booking{
		{ID: "past", DateFrom: day(2024, time.April, 1), DateTo: day(2024, time.April, 3)},
		{ID: "future", DateFrom: day(2024, time.June, 10), DateTo: day(2024, time.June, 12)},
	}}
	svc := NewService(client, fixedTime{now: now}, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		User:         &session.User{Name: "alice", Token: "tok-123"},
		ProfileName:  "alice",
		UpcomingOnly: true,
	})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "future", resp.Bookings[0].ID)
}

func TestGetUserBookings_RequiresLogin(t *testing.T) {
	client := &stubClient{}
	svc := NewService(client, fixedTime{now: day(2024, time.May, 1)}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		User:        nil,
		ProfileName: "alice",
	})
	assert.ErrorIs(t, err, ErrRequiresLogin)
	assert.Zero(t, client.calls)
}

func TestGetUserBookings_AccessDenied(t *testing.T) {
	client := &stubClient{}
	svc := NewService(client, fixedTime{now: day(2024, time.May, 1)}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		User:        &session.User{Name: "bob", Token: "tok-456"},
		ProfileName: "alice",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, client.calls)
}

func TestGetUserBookings_CaseInsensitiveProfileMatch(t *testing.T) {
	client := &stubClient{}
	svc := NewService(client, fixedTime{now: day(2024, time.May, 1)}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		User:        &session.User{Name: "Alice", Token: "tok-123"},
		ProfileName: "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
}

func TestGetUserBookings_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name     string
		upstream error
		want     error
	}{
		{name: "profile not found", upstream: holidazeClient.ErrProfileNotFound, want: ErrProfileNotFound},
		{name: "token rejected", upstream: holidazeClient.ErrUnauthorized, want: ErrRequiresLogin},
		{name: "network failure", upstream: errors.New("connection refused"), want: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{err: tt.upstream}
			svc := NewService(client, fixedTime{now: day(2024, time.May, 1)}, nopLogger{})

			_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
				User:        &session.User{Name: "alice", Token: "tok-123"},
				ProfileName: "alice",
			})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
