package service

import (
	"github.com/cryptotracker/backend/internal/engine"
	"github.com/cryptotracker/backend/internal/model"
	"github.com/cryptotracker/backend/internal/repository"
)

// PositionService handles position reads and their derived metrics. All
// metrics are recomputed by the valuation engine on every call; nothing is
// cached.
type PositionService struct {
	positionRepo *repository.PositionRepository
	lotRepo      *repository.LotRepository
}

// NewPositionService creates a new PositionService with the provided repository dependencies.
func NewPositionService(
	positionRepo *repository.PositionRepository,
	lotRepo *repository.LotRepository,
) *PositionService {
	return &PositionService{
		positionRepo: positionRepo,
		lotRepo:      lotRepo,
	}
}

// ListPositions retrieves all positions with their lots attached.
func (s *PositionService) ListPositions() ([]model.Position, error) {
	positions, err := s.positionRepo.GetPositions()
	if err != nil {
		return nil, err
	}

	positionIDs := make([]string, len(positions))
	for i, p := range positions {
		positionIDs[i] = p.ID
	}

	lotsByPosition, err := s.lotRepo.GetLotsByPositionIDs(positionIDs)
	if err != nil {
		return nil, err
	}

	for i := range positions {
		positions[i].Lots = lotsByPosition[positions[i].ID]
	}

	return positions, nil
}

// GetPosition retrieves a single position with its lots attached.
func (s *PositionService) GetPosition(positionID string) (model.Position, error) {
	position, err := s.positionRepo.GetPositionOnID(positionID)
	if err != nil {
		return model.Position{}, err
	}

	lotsByPosition, err := s.lotRepo.GetLotsByPositionIDs([]string{position.ID})
	if err != nil {
		return model.Position{}, err
	}
	position.Lots = lotsByPosition[position.ID]

	return position, nil
}

// GetSummary computes the aggregate metrics for a position.
func (s *PositionService) GetSummary(positionID string) (model.CoinSummary, error) {
	position, err := s.GetPosition(positionID)
	if err != nil {
		return model.CoinSummary{}, err
	}

	return engine.Summarize(position), nil
}

// EvaluatedLot pairs a lot with its profit/loss against the position's current
// price.
type EvaluatedLot struct {
	Lot    model.Lot
	Result model.LotResult
}

// EvaluateLots computes the per-lot profit/loss for every lot of a position.
func (s *PositionService) EvaluateLots(p model.Position) []EvaluatedLot {
	evaluated := make([]EvaluatedLot, len(p.Lots))
	for i, lot := range p.Lots {
		evaluated[i] = EvaluatedLot{
			Lot:    lot,
			Result: engine.Evaluate(lot, p.CurrentPrice),
		}
	}
	return evaluated
}
