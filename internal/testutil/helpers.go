package testutil

import (
	"database/sql"
	"testing"

	"github.com/cryptotracker/backend/internal/repository"
	"github.com/cryptotracker/backend/internal/service"
)

func NewTestPositionService(t *testing.T, db *sql.DB) *service.PositionService {
	t.Helper()

	positionRepo := repository.NewPositionRepository(db)
	lotRepo := repository.NewLotRepository(db)

	return service.NewPositionService(
		positionRepo,
		lotRepo,
	)
}

func NewTestLotService(t *testing.T, db *sql.DB) *service.LotService {
	t.Helper()

	positionRepo := repository.NewPositionRepository(db)
	lotRepo := repository.NewLotRepository(db)

	return service.NewLotService(
		db,
		positionRepo,
		lotRepo,
	)
}

func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	return service.NewPortfolioService(
		NewTestPositionService(t, db),
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}
