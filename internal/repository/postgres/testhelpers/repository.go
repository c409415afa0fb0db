package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/places-sync/internal/domain/repository"
	"github.com/places-sync/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewPlaceRepositoryForTest creates a place repository with test database and logger
func NewPlaceRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.PlaceRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewPlaceRepository(pgDB)
}
