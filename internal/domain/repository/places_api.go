package repository

import (
	"context"

	"github.com/places-sync/internal/domain"
)

// PlacesAPI - интерфейс клиента Google Places API.
// Оба метода возвращают Outcome: транспортные ошибки и не-200 ответы
// превращаются в Failure и никогда не паникуют.
type PlacesAPI interface {
	// Search ищет место по произвольному тексту (название, адрес, телефон)
	Search(ctx context.Context, text string) domain.Outcome[[]domain.Candidate]

	// Details запрашивает детали места по place_id с фиксированным
	// списком полей (никогда "все поля")
	Details(ctx context.Context, placeID string) domain.Outcome[domain.RawDetails]
}
