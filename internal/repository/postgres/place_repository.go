package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/places-sync/internal/domain"
	"github.com/places-sync/internal/domain/repository"
	"github.com/places-sync/internal/pkg/errors"
	"github.com/places-sync/internal/pkg/validator"
	"go.uber.org/zap"
)

type placeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *placeRepository) FindByPlaceID(ctx context.Context, placeID string) (*domain.Place, error) {
	query := `
		SELECT
			id, place_id, display_name, national_phone_number, formatted_address,
			latitude, longitude, reviews_uri, website_uri, opening_hours,
			updated_at, created_at
		FROM places
		WHERE place_id = $1
	`

	var place domain.Place
	var phone, address, reviews, website sql.NullString
	var openingHoursJSON []byte

	err := r.db.QueryRowContext(ctx, query, placeID).Scan(
		&place.ID, &place.PlaceID, &place.DisplayName,
		&phone, &address,
		&place.Latitude, &place.Longitude,
		&reviews, &website, &openingHoursJSON,
		&place.UpdatedAt, &place.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.ErrPlaceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get place by place_id",
			zap.String("place_id", placeID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	place.NationalPhoneNumber = phone.String
	place.FormattedAddress = address.String
	place.ReviewsURI = reviews.String
	place.WebsiteURI = website.String
	place.OpeningHours = unmarshalOpeningHours(r.logger, placeID, openingHoursJSON)

	return &place, nil
}

// Upsert сохраняет запись по натуральному ключу place_id.
// ON CONFLICT гарантирует ровно одну строку на place_id: повторное
// сохранение перезаписывает все изменяемые поля.
func (r *placeRepository) Upsert(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	if err := validator.Validate(place); err != nil {
		r.logger.Error("Place failed validation",
			zap.String("place_id", place.PlaceID),
			zap.String("display_name", place.DisplayName),
			zap.Error(err))
		return nil, errors.ErrValidationError
	}

	openingHoursJSON, err := json.Marshal(place.OpeningHours)
	if err != nil {
		r.logger.Error("Failed to marshal opening hours",
			zap.String("place_id", place.PlaceID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	query := `
		INSERT INTO places (
			place_id, display_name, national_phone_number, formatted_address,
			latitude, longitude, reviews_uri, website_uri, opening_hours, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (place_id) DO UPDATE SET
			display_name          = EXCLUDED.display_name,
			national_phone_number = EXCLUDED.national_phone_number,
			formatted_address     = EXCLUDED.formatted_address,
			latitude              = EXCLUDED.latitude,
			longitude             = EXCLUDED.longitude,
			reviews_uri           = EXCLUDED.reviews_uri,
			website_uri           = EXCLUDED.website_uri,
			opening_hours         = EXCLUDED.opening_hours,
			updated_at            = EXCLUDED.updated_at
		RETURNING id, created_at
	`

	stored := *place
	err = r.db.QueryRowContext(ctx, query,
		place.PlaceID, place.DisplayName,
		nullIfEmpty(place.NationalPhoneNumber), nullIfEmpty(place.FormattedAddress),
		place.Latitude, place.Longitude,
		nullIfEmpty(place.ReviewsURI), nullIfEmpty(place.WebsiteURI),
		openingHoursJSON, place.UpdatedAt,
	).Scan(&stored.ID, &stored.CreatedAt)

	if err != nil {
		r.logger.Error("Failed to upsert place",
			zap.String("place_id", place.PlaceID),
			zap.String("display_name", place.DisplayName),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &stored, nil
}

func (r *placeRepository) ListQueries(ctx context.Context) ([]domain.PlaceQuery, error) {
	query := `
		SELECT place_id
		FROM places
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list place queries", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	queries := make([]domain.PlaceQuery, 0)
	for rows.Next() {
		var q domain.PlaceQuery
		if err := rows.Scan(&q.PlaceID); err != nil {
			r.logger.Error("Failed to scan place query", zap.Error(err))
			continue
		}
		queries = append(queries, q)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate place queries", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return queries, nil
}

func unmarshalOpeningHours(logger *zap.Logger, placeID string, data []byte) []domain.OpeningHoursPeriod {
	periods := []domain.OpeningHoursPeriod{}
	if len(data) == 0 {
		return periods
	}
	if err := json.Unmarshal(data, &periods); err != nil {
		logger.Warn("Failed to unmarshal opening hours",
			zap.String("place_id", placeID),
			zap.Error(err))
		return []domain.OpeningHoursPeriod{}
	}
	return periods
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
