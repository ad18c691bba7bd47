package model

// CoinSummary aggregates a position's lots into display metrics. All values
// are derived on every read; nothing is cached or stored.
//
// TotalInvested is the net signed sum of quantity*unitPrice, so sells reduce
// it. ProfitPercentage and AveragePurchasePrice are non-finite (NaN or ±Inf)
// when their denominators are zero; callers at the display boundary are
// responsible for suppressing non-finite values.
type CoinSummary struct {
	TotalInvested        float64 `json:"totalInvested"`
	CurrentValue         float64 `json:"currentValue"`
	TotalProfit          float64 `json:"totalProfit"`
	ProfitPercentage     float64 `json:"profitPercentage"`
	TotalQuantity        float64 `json:"totalQuantity"`
	AveragePurchasePrice float64 `json:"averagePurchasePrice"`
}

// LotResult holds the per-lot profit/loss of a single lot measured against the
// position's current price. ProfitPercentage is non-finite when GrossAmount is
// zero.
type LotResult struct {
	GrossAmount      float64 `json:"grossAmount"`
	Profit           float64 `json:"profit"`
	ProfitPercentage float64 `json:"profitPercentage"`
}
