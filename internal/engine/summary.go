// Package engine implements the portfolio valuation calculations: position
// aggregation, per-lot profit/loss, the chart series, and portfolio-level
// overview stats.
//
// Every function in this package is a pure, stateless transform over the model
// types. Inputs are never mutated and there is no internal caching; callers
// recompute on every read. Division by zero (empty or fully-offset positions)
// yields IEEE-754 non-finite values which are propagated, never raised — the
// display boundary is responsible for suppressing them.
package engine

import "github.com/cryptotracker/backend/internal/model"

// Summarize reduces a position's lots into aggregate metrics using the
// running-average cost model.
//
// TotalInvested nets sells (negative quantity) against buys, so it is the net
// capital attributed to the position rather than gross spend. When
// TotalInvested or TotalQuantity is zero, ProfitPercentage respectively
// AveragePurchasePrice come out non-finite.
func Summarize(p model.Position) model.CoinSummary {
	var s model.CoinSummary

	for _, lot := range p.Lots {
		s.TotalInvested += lot.Quantity * lot.UnitPrice
		s.TotalQuantity += lot.Quantity
	}

	s.CurrentValue = s.TotalQuantity * p.CurrentPrice
	s.TotalProfit = s.CurrentValue - s.TotalInvested
	s.ProfitPercentage = s.TotalProfit / s.TotalInvested * 100
	s.AveragePurchasePrice = s.TotalInvested / s.TotalQuantity

	return s
}
