package model

import "time"

// DateLayout is the day-granularity date format used for storage, API payloads,
// and as the join key of the chart series.
const DateLayout = "2006-01-02"

// LotKind distinguishes buy lots from sell lots. It is a closed enum; every
// consumption site switches over exactly these two values.
type LotKind string

const (
	LotKindBuy  LotKind = "buy"
	LotKindSell LotKind = "sell"
)

// Lot represents one recorded buy or sell transaction for a position.
// Quantity is signed: positive for buys, negative for sells, and its sign
// always agrees with Kind. Lots are immutable once created.
type Lot struct {
	ID         string    `json:"id"`
	PositionID string    `json:"positionId"`
	Date       time.Time `json:"date"`
	Kind       LotKind   `json:"kind"`
	Quantity   float64   `json:"quantity"`
	UnitPrice  float64   `json:"unitPrice"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// Day returns the lot's date formatted at day granularity.
func (l Lot) Day() string {
	return l.Date.Format(DateLayout)
}
