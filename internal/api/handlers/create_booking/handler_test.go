package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holidaze/booking-gateway/internal/api/middleware"
	"github.com/holidaze/booking-gateway/internal/domain"
	"github.com/holidaze/booking-gateway/internal/session"
	createBooking "github.com/holidaze/booking-gateway/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *createBooking.Response
	err  error
	req  *createBooking.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func doRequest(t *testing.T, uc *stubUseCase, body string, user *session.User) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	if user != nil {
		req = req.WithContext(middleware.WithUser(req.Context(), user))
	}

	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func validBody() string {
	return `{"venueId":"venue-1","dateFrom":"2025-06-10","dateTo":"2025-06-12","adults":2}`
}

func TestHandle_Success(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		BookingID: "b-1",
		VenueID:   "venue-1",
		DateFrom:  time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		DateTo:    time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC),
		Guests:    2,
		Pricing:   domain.PricingResult{Nights: 3, BasePrice: 300, GuestFee: 20, Total: 320},
		CreatedAt: time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, validBody(), &session.User{Name: "alice", Token: "tok"})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, "2025-06-10", resp.DateFrom)
	assert.Equal(t, 320.0, resp.Pricing.Total)

	// Пользователь из контекста прокидывается в use case
	require.NotNil(t, uc.req)
	assert.Equal(t, "alice", uc.req.User.Name)
	assert.Equal(t, 2, uc.req.Guests.Adults)
}

func TestHandle_MissingUser(t *testing.T) {
	uc := &stubUseCase{}
	rec := doRequest(t, uc, validBody(), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.req)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &stubUseCase{}
	rec := doRequest(t, uc, `{"venueId":`, &session.User{Name: "alice", Token: "tok"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDateFormat(t *testing.T) {
	uc := &stubUseCase{}
	body := `{"venueId":"venue-1","dateFrom":"10.06.2025","dateTo":"2025-06-12","adults":2}`
	rec := doRequest(t, uc, body, &session.User{Name: "alice", Token: "tok"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.req)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "requires login", err: createBooking.ErrRequiresLogin, wantStatus: http.StatusUnauthorized},
		{name: "owner cannot book", err: createBooking.ErrOwnerCannotBook, wantStatus: http.StatusForbidden},
		{name: "invalid range", err: createBooking.ErrInvalidRange, wantStatus: http.StatusBadRequest},
		{name: "over capacity", err: createBooking.ErrOverCapacity, wantStatus: http.StatusBadRequest},
		{name: "venue not found", err: createBooking.ErrVenueNotFound, wantStatus: http.StatusNotFound},
		{name: "submission in progress", err: createBooking.ErrSubmissionInProgress, wantStatus: http.StatusConflict},
		{name: "submission rejected", err: &createBooking.SubmissionRejectedError{}, wantStatus: http.StatusBadGateway},
		{name: "internal", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.err}
			rec := doRequest(t, uc, validBody(), &session.User{Name: "alice", Token: "tok"})
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_RejectionMessagePassedThrough(t *testing.T) {
	uc := &stubUseCase{err: &createBooking.SubmissionRejectedError{
		Message: "The selected dates are no longer available",
	}}
	rec := doRequest(t, uc, validBody(), &session.User{Name: "alice", Token: "tok"})

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "The selected dates are no longer available", resp.Error)
}
