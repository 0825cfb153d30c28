package holidaze

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/holidaze/booking-gateway/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для метрик запросов к внешнему API
type Metrics interface {
	ObserveUpstreamRequest(operation string, status int, duration time.Duration)
}

// ListVenuesParams параметры листинга venues
type ListVenuesParams struct {
	Limit     int
	Offset    int
	Sort      string // поле сортировки, например "created"
	SortOrder string // "asc" или "desc"
}

// Client клиент для работы с Holidaze API
// Вся персистентность и бизнес-правила живут на стороне внешнего API,
// клиент - единственная точка доступа к нему
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
}

// NewClient создает новый экземпляр клиента Holidaze API
// metrics может быть nil, если сбор метрик выключен
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// GetVenue получает venue по ID вместе с владельцем и списком бронирований
func (c *Client) GetVenue(ctx context.Context, venueID string) (*domain.Venue, error) {
	endpoint := fmt.Sprintf("%s/venues/%s?_owner=true&_bookings=true", c.baseURL, url.PathEscape(venueID))

	resp, err := c.do(ctx, http.MethodGet, endpoint, "", nil, "get_venue")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrVenueNotFound
	default:
		return nil, c.unexpectedStatus(resp)
	}

	var venue Venue
	if err := json.NewDecoder(resp.Body).Decode(&venue); err != nil {
		return nil, fmt.Errorf("%w: failed to decode venue: %v", ErrInvalidResponse, err)
	}

	return venue.ToDomain(), nil
}

// ListVenues получает страницу venues
func (c *Client) ListVenues(ctx context.Context, params ListVenuesParams) ([]*domain.Venue, error) {
	query := url.Values{}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.Sort != "" {
		query.Set("sort", params.Sort)
	}
	if params.SortOrder != "" {
		query.Set("sortOrder", params.SortOrder)
	}

	endpoint := fmt.Sprintf("%s/venues", c.baseURL)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	resp, err := c.do(ctx, http.MethodGet, endpoint, "", nil, "list_venues")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.unexpectedStatus(resp)
	}

	var venues []Venue
	if err := json.NewDecoder(resp.Body).Decode(&venues); err != nil {
		return nil, fmt.Errorf("%w: failed to decode venues: %v", ErrInvalidResponse, err)
	}

	result := make([]*domain.Venue, 0, len(venues))
	for i := range venues {
		result = append(result, venues[i].ToDomain())
	}

	return result, nil
}

// CreateBooking отправляет бронирование во внешний API от имени пользователя
// При отклонении запроса возвращает ErrBookingRejected с сообщением сервера
func (c *Client) CreateBooking(ctx context.Context, token string, req *CreateBookingRequest) (*domain.Booking, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal booking request: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/bookings", c.baseURL)

	resp, err := c.do(ctx, http.MethodPost, endpoint, token, bytes.NewReader(body), "create_booking")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrVenueNotFound
	default:
		// Отклонение: пробрасываем сообщение сервера, если оно есть
		return nil, &RejectionError{
			StatusCode: resp.StatusCode,
			Message:    c.readErrorMessage(resp),
		}
	}

	var booking Booking
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return nil, fmt.Errorf("%w: failed to decode booking: %v", ErrInvalidResponse, err)
	}

	return booking.ToDomain(), nil
}

// GetProfileBookings получает бронирования профиля вместе с venue
func (c *Client) GetProfileBookings(ctx context.Context, token string, profileName string) ([]*domain.Booking, error) {
	endpoint := fmt.Sprintf("%s/profiles/%s/bookings?_venue=true", c.baseURL, url.PathEscape(profileName))

	resp, err := c.do(ctx, http.MethodGet, endpoint, token, nil, "get_profile_bookings")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrProfileNotFound
	default:
		return nil, c.unexpectedStatus(resp)
	}

	var bookings []Booking
	if err := json.NewDecoder(resp.Body).Decode(&bookings); err != nil {
		return nil, fmt.Errorf("%w: failed to decode bookings: %v", ErrInvalidResponse, err)
	}

	result := make([]*domain.Booking, 0, len(bookings))
	for i := range bookings {
		result = append(result, bookings[i].ToDomain())
	}

	return result, nil
}

// do выполняет HTTP запрос с опциональным bearer-токеном и фиксирует метрики
func (c *Client) do(ctx context.Context, method, endpoint, token string, body io.Reader, operation string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, 0, started)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	c.observe(operation, resp.StatusCode, started)
	return resp, nil
}

// unexpectedStatus формирует ошибку по неожиданному статус-коду ответа
func (c *Client) unexpectedStatus(resp *http.Response) error {
	if msg := c.readErrorMessage(resp); msg != "" {
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, msg)
	}
	return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
}

// readErrorMessage пытается прочитать структурированное сообщение об ошибке
func (c *Client) readErrorMessage(resp *http.Response) string {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err != nil {
		return ""
	}

	return errResp.Message()
}

func (c *Client) observe(operation string, status int, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveUpstreamRequest(operation, status, time.Since(started))
}
