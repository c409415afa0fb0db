package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/places-sync/internal/domain"
)

// PlaceResponse - данные о месте в ответе API
type PlaceResponse struct {
	PlaceID             string                      `json:"place_id"`
	DisplayName         string                      `json:"display_name"`
	NationalPhoneNumber string                      `json:"national_phone_number,omitempty"`
	FormattedAddress    string                      `json:"formatted_address,omitempty"`
	Latitude            *float64                    `json:"latitude,omitempty"`
	Longitude           *float64                    `json:"longitude,omitempty"`
	ReviewsURI          string                      `json:"reviews_uri,omitempty"`
	WebsiteURI          string                      `json:"website_uri,omitempty"`
	OpeningHours        []domain.OpeningHoursPeriod `json:"opening_hours"`
	UpdatedAt           time.Time                   `json:"updated_at"`
}

// FromPlace конвертирует domain.Place в PlaceResponse
func FromPlace(place *domain.Place) *PlaceResponse {
	if place == nil {
		return nil
	}
	return &PlaceResponse{
		PlaceID:             place.PlaceID,
		DisplayName:         place.DisplayName,
		NationalPhoneNumber: place.NationalPhoneNumber,
		FormattedAddress:    place.FormattedAddress,
		Latitude:            place.Latitude,
		Longitude:           place.Longitude,
		ReviewsURI:          place.ReviewsURI,
		WebsiteURI:          place.WebsiteURI,
		OpeningHours:        place.OpeningHours,
		UpdatedAt:           place.UpdatedAt,
	}
}

// SyncPlaceResponse - результат одиночной синхронизации.
// Proceed всегда true: потеря данных обогащения не должна блокировать
// сохранение на вызывающей стороне.
type SyncPlaceResponse struct {
	Proceed bool           `json:"proceed"`
	Place   *PlaceResponse `json:"place,omitempty"`
}

// SyncAllResponse - подтверждение постановки batch-задачи в очередь
type SyncAllResponse struct {
	Success bool      `json:"success"`
	JobID   uuid.UUID `json:"job_id,omitempty"`
}

// SyncProgressResponse - состояние batch-задачи
type SyncProgressResponse struct {
	JobID        uuid.UUID `json:"job_id"`
	Step         int       `json:"step"`
	Total        int       `json:"total"`
	Fraction     float64   `json:"fraction"`
	CurrentPlace string    `json:"current_place,omitempty"`
	Failed       []string  `json:"failed,omitempty"`
	Done         bool      `json:"done"`
}
