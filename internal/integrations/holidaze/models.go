package holidaze

import (
	"time"

	"github.com/holidaze/booking-gateway/internal/domain"
)

// Venue модель venue из Holidaze API
type Venue struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Media       []string  `json:"media"`
	Price       float64   `json:"price"`
	MaxGuests   int       `json:"maxGuests"`
	Rating      float64   `json:"rating"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
	Meta        Meta      `json:"meta"`
	Location    Location  `json:"location"`
	Owner       *Owner    `json:"owner,omitempty"`
	Bookings    []Booking `json:"bookings,omitempty"`
}

// Meta флаги удобств venue
type Meta struct {
	WiFi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// Location адрес venue
type Location struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Zip       string  `json:"zip"`
	Country   string  `json:"country"`
	Continent string  `json:"continent"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

// Owner владелец venue (venue manager)
type Owner struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// Booking модель бронирования из Holidaze API
// Даты приходят ISO-8601 строками с компонентом времени
type Booking struct {
	ID       string    `json:"id"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
	VenueID  string    `json:"venueId,omitempty"`
	Venue    *Venue    `json:"venue,omitempty"`
}

// CreateBookingRequest тело запроса на создание бронирования
// guests - суммарное число гостей, внешний API не различает категории
type CreateBookingRequest struct {
	VenueID  string `json:"venueId"`
	DateFrom string `json:"dateFrom"` // ISO-8601
	DateTo   string `json:"dateTo"`   // ISO-8601
	Guests   int    `json:"guests"`
}

// ErrorResponse модель ошибки Holidaze API
type ErrorResponse struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
}

// Message возвращает первое сообщение об ошибке или пустую строку
func (e *ErrorResponse) Message() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Message
}

// ToDomain конвертирует модель venue в доменную
func (v *Venue) ToDomain() *domain.Venue {
	venue := &domain.Venue{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price,
		MaxGuests:   v.MaxGuests,
		Rating:      v.Rating,
		MediaURLs:   v.Media,
		Meta: domain.VenueMeta{
			WiFi:      v.Meta.WiFi,
			Parking:   v.Meta.Parking,
			Breakfast: v.Meta.Breakfast,
			Pets:      v.Meta.Pets,
		},
		Location: domain.VenueLocation{
			Address:   v.Location.Address,
			City:      v.Location.City,
			Zip:       v.Location.Zip,
			Country:   v.Location.Country,
			Continent: v.Location.Continent,
			Latitude:  v.Location.Lat,
			Longitude: v.Location.Lng,
		},
		Created: v.Created,
		Updated: v.Updated,
	}

	if v.Owner != nil {
		venue.Owner = &domain.VenueOwner{
			Name:   v.Owner.Name,
			Email:  v.Owner.Email,
			Avatar: v.Owner.Avatar,
		}
	}

	for _, b := range v.Bookings {
		venue.Bookings = append(venue.Bookings, *b.ToDomain())
	}

	return venue
}

// ToDomain конвертирует модель бронирования в доменную
func (b *Booking) ToDomain() *domain.Booking {
	venueID := b.VenueID
	if venueID == "" && b.Venue != nil {
		venueID = b.Venue.ID
	}

	return &domain.Booking{
		ID:       b.ID,
		VenueID:  venueID,
		DateFrom: b.DateFrom,
		DateTo:   b.DateTo,
		Guests:   b.Guests,
		Created:  b.Created,
		Updated:  b.Updated,
	}
}
