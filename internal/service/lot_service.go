package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cryptotracker/backend/internal/api/request"
	"github.com/cryptotracker/backend/internal/apperrors"
	"github.com/cryptotracker/backend/internal/model"
	"github.com/cryptotracker/backend/internal/repository"
)

// LotService handles lot submission and deletion. It owns the two invariants
// the valuation engine relies on: a lot's kind always agrees with the sign of
// its quantity, and a live position never has zero lots.
type LotService struct {
	db           *sql.DB
	positionRepo *repository.PositionRepository
	lotRepo      *repository.LotRepository
}

// NewLotService creates a new LotService with the provided repository dependencies.
func NewLotService(
	db *sql.DB,
	positionRepo *repository.PositionRepository,
	lotRepo *repository.LotRepository,
) *LotService {
	return &LotService{
		db:           db,
		positionRepo: positionRepo,
		lotRepo:      lotRepo,
	}
}

// CreateLot records a validated lot submission.
//
// When a position already exists for the symbol (matched case-insensitively)
// the lot is appended to it and the position's current price is overwritten.
// Otherwise a new position is created with the next round-robin palette color.
// The lot's kind is derived from the sign of the submitted quantity. The whole
// submission runs in one SQL transaction.
//
// Returns the affected position with all of its lots loaded.
func (s *LotService) CreateLot(ctx context.Context, req request.CreateLotRequest) (*model.Position, error) {
	lotDate, err := time.Parse(model.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse lot date: %w", err)
	}

	// Normalize once so the merge lookup and the insert agree: validation
	// accepts symbols with surrounding whitespace, but rows store the trimmed
	// upper-cased form.
	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))

	kind := model.LotKindBuy
	if req.Quantity < 0 {
		kind = model.LotKindSell
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	position, err := s.positionRepo.GetPositionBySymbol(ctx, tx, symbol)
	switch {
	case err == nil:
		if err := s.positionRepo.UpdateCurrentPrice(ctx, tx, position.ID, req.CurrentPrice); err != nil {
			return nil, err
		}
		position.CurrentPrice = req.CurrentPrice

	case errors.Is(err, apperrors.ErrPositionNotFound):
		count, err := s.positionRepo.CountPositions(ctx, tx)
		if err != nil {
			return nil, err
		}

		position = model.Position{
			ID:           uuid.New().String(),
			Symbol:       symbol,
			CurrentPrice: req.CurrentPrice,
			DisplayColor: displayColor(count),
		}
		if err := s.positionRepo.InsertPosition(ctx, tx, &position); err != nil {
			return nil, err
		}

	default:
		return nil, err
	}

	lot := &model.Lot{
		ID:         uuid.New().String(),
		PositionID: position.ID,
		Date:       lotDate,
		Kind:       kind,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
	}
	if err := s.lotRepo.InsertLot(ctx, tx, lot); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit lot submission: %w", err)
	}

	lotsByPosition, err := s.lotRepo.GetLotsByPositionIDs([]string{position.ID})
	if err != nil {
		return nil, err
	}
	position.Lots = lotsByPosition[position.ID]

	return &position, nil
}

// DeleteLot removes a lot. When it was the position's last lot, the position
// is deleted in the same transaction — no empty positions persist.
func (s *LotService) DeleteLot(ctx context.Context, lotID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	lot, err := s.lotRepo.GetLotOnID(ctx, tx, lotID)
	if err != nil {
		return err
	}

	if err := s.lotRepo.DeleteLot(ctx, tx, lotID); err != nil {
		return err
	}

	remaining, err := s.lotRepo.CountLotsOnPositionID(ctx, tx, lot.PositionID)
	if err != nil {
		return err
	}
	if remaining == 0 {
		if err := s.positionRepo.DeletePosition(ctx, tx, lot.PositionID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit lot deletion: %w", err)
	}

	return nil
}
