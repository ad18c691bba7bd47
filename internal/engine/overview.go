package engine

import (
	"math"
	"sort"

	"github.com/cryptotracker/backend/internal/model"
)

// yesterdayPriceFactor stands in for yesterday's closing price: no historical
// price feed exists, so the daily change is measured against a hypothetical
// currentPrice * 0.98. A deliberate placeholder, not a market value.
const yesterdayPriceFactor = 0.98

// Performance describes one position's synthetic daily change.
type Performance struct {
	Symbol string
	Change float64
	Value  float64
}

// Overview holds the portfolio-level stats shown above the chart. TopPerformer
// and WorstPerformer are nil when there are no positions. Change is non-finite
// for a position whose net quantity is zero.
type Overview struct {
	TotalValue     float64
	TopPerformer   *Performance
	WorstPerformer *Performance
}

// BuildOverview computes the total portfolio value and ranks positions by
// absolute daily change, descending. The first entry is the top performer, the
// last the worst.
func BuildOverview(positions []model.Position) Overview {
	var o Overview

	changes := make([]Performance, 0, len(positions))
	for _, p := range positions {
		var value, prevValue float64
		for _, lot := range p.Lots {
			value += lot.Quantity * p.CurrentPrice
			prevValue += lot.Quantity * p.CurrentPrice * yesterdayPriceFactor
		}

		o.TotalValue += value
		changes = append(changes, Performance{
			Symbol: p.Symbol,
			Change: (value - prevValue) / prevValue * 100,
			Value:  value,
		})
	}

	sort.SliceStable(changes, func(i, j int) bool {
		return math.Abs(changes[i].Change) > math.Abs(changes[j].Change)
	})

	if len(changes) > 0 {
		o.TopPerformer = &changes[0]
		o.WorstPerformer = &changes[len(changes)-1]
	}

	return o
}
