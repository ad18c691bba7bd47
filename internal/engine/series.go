package engine

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/cryptotracker/backend/internal/model"
)

// Series is the date-aligned valuation series for multi-position charting.
// Dates is the ascending set of distinct lot dates across all positions
// ("2006-01-02" strings, so lexical order is chronological order). Values maps
// each position's symbol to one number per date.
type Series struct {
	Dates  []string
	Values map[string][]float64
}

// BuildSeries builds the cumulative valuation series for the given positions.
//
// For each position and axis date, the value is the sum of quantity times the
// position's *current* price over all lots dated on or before that date. Using
// the current price at every point is deliberate: the curve shows what today's
// price implies the position was worth at each cumulative-quantity milestone,
// not a historical valuation. Between a position's own transaction dates the
// value is exactly flat, since only quantity changes over the axis.
func BuildSeries(positions []model.Position) Series {
	dateSet := make(map[string]struct{})
	for _, p := range positions {
		for _, lot := range p.Lots {
			dateSet[lot.Day()] = struct{}{}
		}
	}

	dates := make([]string, 0, len(dateSet))
	for date := range dateSet {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	values := make(map[string][]float64, len(positions))
	for _, p := range positions {
		points := make([]float64, len(dates))
		for i, date := range dates {
			var sum float64
			for _, lot := range p.Lots {
				if lot.Day() <= date {
					sum += lot.Quantity * p.CurrentPrice
				}
			}
			points[i] = sum
		}
		values[p.Symbol] = points
	}

	return Series{Dates: dates, Values: values}
}

// DescribeTransaction produces the human-readable tooltip narrative for the
// first of the position's lots dated on the given day. Returns nil when no lot
// matches.
//
// A sell narrative reports profit against the quantity-weighted mean unit
// price of all buy lots strictly earlier than the sell. With no prior buys
// that average is non-finite and the narrative renders it as-is ("NaN"),
// matching the non-finite propagation policy.
func DescribeTransaction(p model.Position, date time.Time) []string {
	day := date.Format(model.DateLayout)

	var match *model.Lot
	for i := range p.Lots {
		if p.Lots[i].Day() == day {
			match = &p.Lots[i]
			break
		}
	}
	if match == nil {
		return nil
	}

	quantity := math.Abs(match.Quantity)
	total := quantity * match.UnitPrice

	if match.Kind == model.LotKindBuy {
		return []string{
			fmt.Sprintf("%s Buy", p.Symbol),
			fmt.Sprintf("Amount: %.8f %s", quantity, p.Symbol),
			fmt.Sprintf("Price: $%.2f", match.UnitPrice),
			fmt.Sprintf("Total Spent: $%.2f", total),
		}
	}

	var buyQuantity, buyCost float64
	for _, lot := range p.Lots {
		if lot.Kind == model.LotKindBuy && lot.Date.Before(match.Date) {
			buyCost += lot.UnitPrice * math.Abs(lot.Quantity)
			buyQuantity += math.Abs(lot.Quantity)
		}
	}

	avgBuyPrice := buyCost / buyQuantity
	costBasis := quantity * avgBuyPrice
	profit := total - costBasis
	profitPercentage := profit / costBasis * 100

	return []string{
		fmt.Sprintf("%s Sell", p.Symbol),
		fmt.Sprintf("Amount: %.8f %s", quantity, p.Symbol),
		fmt.Sprintf("Sale Price: $%.2f", match.UnitPrice),
		fmt.Sprintf("Total Received: $%.2f", total),
		fmt.Sprintf("Profit/Loss: %s$%.2f (%s%.2f%%)", plusSign(profit), profit, plusSign(profitPercentage), profitPercentage),
	}
}

// plusSign prefixes non-negative values with "+"; negative and NaN values get
// no prefix, so the "%.2f" rendering carries the sign (or "NaN") itself.
func plusSign(v float64) string {
	if v >= 0 {
		return "+"
	}
	return ""
}
