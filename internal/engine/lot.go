package engine

import (
	"math"

	"github.com/cryptotracker/backend/internal/model"
)

// Evaluate computes a single lot's profit/loss against the current price.
//
// For a buy, profit is the unrealized gain of still holding the lot. For a
// sell, profit measures how much better (or worse) selling at the lot's price
// was compared to holding until now. ProfitPercentage is non-finite when the
// lot's gross amount is zero.
func Evaluate(lot model.Lot, currentPrice float64) model.LotResult {
	absQty := math.Abs(lot.Quantity)
	grossAmount := absQty * lot.UnitPrice
	currentGross := absQty * currentPrice

	var profit float64
	switch lot.Kind {
	case model.LotKindBuy:
		profit = currentGross - grossAmount
	case model.LotKindSell:
		profit = grossAmount - currentGross
	}

	return model.LotResult{
		GrossAmount:      grossAmount,
		Profit:           profit,
		ProfitPercentage: profit / grossAmount * 100,
	}
}
