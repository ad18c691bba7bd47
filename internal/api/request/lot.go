package request

// CreateLotRequest is the payload for submitting a new lot. The quantity is
// signed: a positive value records a buy, a negative value a sell. The current
// price accompanies every submission and overwrites the position's stored
// price.
type CreateLotRequest struct {
	Symbol       string  `json:"symbol"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	Date         string  `json:"date"`
	CurrentPrice float64 `json:"currentPrice"`
}
