package model

// Position represents one tracked asset and the lots recorded against it.
// Symbol is the identity key and is matched case-insensitively when new lots
// are submitted. CurrentPrice is the latest known market price, overwritten on
// every lot submission for the symbol. A live position always holds at least
// one lot; deleting the last lot removes the position entirely.
type Position struct {
	ID           string  `json:"id"`
	Symbol       string  `json:"symbol"`
	CurrentPrice float64 `json:"currentPrice"`
	DisplayColor string  `json:"displayColor"`
	Lots         []Lot   `json:"lots"`
}
