package models

import (
	"time"

	"github.com/holidaze/booking-gateway/internal/domain"
)

// Request модели

// ListVenuesRequest запрос на получение списка venues
type ListVenuesRequest struct {
	Limit     int
	Offset    int
	Sort      string
	SortOrder string
}

// Response модели

// VenueResponse ответ с данными venue
type VenueResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Price       float64        `json:"price"`
	MaxGuests   int            `json:"maxGuests"`
	Rating      float64        `json:"rating"`
	MediaURLs   []string       `json:"mediaUrls,omitempty"`
	Meta        MetaResponse   `json:"meta"`
	Location    LocationResponse `json:"location"`
	Owner       *OwnerResponse `json:"owner,omitempty"`
	Created     time.Time      `json:"created"`
	Updated     time.Time      `json:"updated"`
}

// MetaResponse флаги удобств venue
type MetaResponse struct {
	WiFi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// LocationResponse адрес venue
type LocationResponse struct {
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	Zip       string  `json:"zip,omitempty"`
	Country   string  `json:"country,omitempty"`
	Continent string  `json:"continent,omitempty"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// OwnerResponse владелец venue
type OwnerResponse struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// VenueListResponse ответ со списком venues
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// Методы конвертации

// FromDomainVenue конвертирует domain модель в DTO
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	if v == nil {
		return nil
	}

	resp := &VenueResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price,
		MaxGuests:   v.MaxGuests,
		Rating:      v.Rating,
		MediaURLs:   v.MediaURLs,
		Meta: MetaResponse{
			WiFi:      v.Meta.WiFi,
			Parking:   v.Meta.Parking,
			Breakfast: v.Meta.Breakfast,
			Pets:      v.Meta.Pets,
		},
		Location: LocationResponse{
			Address:   v.Location.Address,
			City:      v.Location.City,
			Zip:       v.Location.Zip,
			Country:   v.Location.Country,
			Continent: v.Location.Continent,
			Latitude:  v.Location.Latitude,
			Longitude: v.Location.Longitude,
		},
		Created: v.Created,
		Updated: v.Updated,
	}

	if v.Owner != nil {
		resp.Owner = &OwnerResponse{
			Name:   v.Owner.Name,
			Email:  v.Owner.Email,
			Avatar: v.Owner.Avatar,
		}
	}

	return resp
}

// FromDomainVenueList конвертирует список domain моделей в DTO
func FromDomainVenueList(venues []*domain.Venue) *VenueListResponse {
	resp := &VenueListResponse{
		Venues: []VenueResponse{},
	}

	for _, venue := range venues {
		if venueResp := FromDomainVenue(venue); venueResp != nil {
			resp.Venues = append(resp.Venues, *venueResp)
		}
	}

	return resp
}
