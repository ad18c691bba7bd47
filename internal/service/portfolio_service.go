package service

import (
	"time"

	"github.com/cryptotracker/backend/internal/engine"
)

// PortfolioService handles the cross-position views: the overview stats above
// the chart, the multi-position chart series, and the per-date transaction
// narratives shown in chart tooltips.
type PortfolioService struct {
	positionService *PositionService
}

// NewPortfolioService creates a new PortfolioService with the provided service dependencies.
func NewPortfolioService(positionService *PositionService) *PortfolioService {
	return &PortfolioService{
		positionService: positionService,
	}
}

// ChartDataset is one position's line on the shared date axis.
type ChartDataset struct {
	Symbol string
	Color  string
	Values []float64
}

// ChartData is the full chart payload: the shared ascending date axis and one
// dataset per position, in position creation order.
type ChartData struct {
	Dates    []string
	Datasets []ChartDataset
}

// Overview computes the portfolio-level stats.
func (s *PortfolioService) Overview() (engine.Overview, error) {
	positions, err := s.positionService.ListPositions()
	if err != nil {
		return engine.Overview{}, err
	}

	return engine.BuildOverview(positions), nil
}

// ChartSeries builds the date-aligned cumulative valuation series for all
// positions.
func (s *PortfolioService) ChartSeries() (ChartData, error) {
	positions, err := s.positionService.ListPositions()
	if err != nil {
		return ChartData{}, err
	}

	series := engine.BuildSeries(positions)

	data := ChartData{
		Dates:    series.Dates,
		Datasets: make([]ChartDataset, len(positions)),
	}
	for i, p := range positions {
		data.Datasets[i] = ChartDataset{
			Symbol: p.Symbol,
			Color:  p.DisplayColor,
			Values: series.Values[p.Symbol],
		}
	}

	return data, nil
}

// Narrative returns the tooltip lines for a position's lot on the given date.
// The slice is empty when no lot matches the date.
func (s *PortfolioService) Narrative(positionID string, date time.Time) ([]string, error) {
	position, err := s.positionService.GetPosition(positionID)
	if err != nil {
		return nil, err
	}

	lines := engine.DescribeTransaction(position, date)
	if lines == nil {
		lines = []string{}
	}
	return lines, nil
}
