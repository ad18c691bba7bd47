package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cryptotracker/backend/internal/model"
)

// PositionBuilder provides a fluent interface for creating test positions.
//
// Example usage:
//
//	// Simple creation with defaults
//	position := testutil.NewPosition().Build(t, db)
//
//	// Customized position
//	position := testutil.NewPosition().
//	    WithSymbol("ETH").
//	    WithCurrentPrice(3200).
//	    Build(t, db)
type PositionBuilder struct {
	ID           string
	Symbol       string
	CurrentPrice float64
	DisplayColor string
}

// NewPosition creates a PositionBuilder with sensible defaults.
func NewPosition() *PositionBuilder {
	return &PositionBuilder{
		ID:           MakeID(),
		Symbol:       "BTC",
		CurrentPrice: 52000,
		DisplayColor: "#F7931A",
	}
}

// WithID sets a custom ID.
func (b *PositionBuilder) WithID(id string) *PositionBuilder {
	b.ID = id
	return b
}

// WithSymbol sets a custom symbol.
func (b *PositionBuilder) WithSymbol(symbol string) *PositionBuilder {
	b.Symbol = symbol
	return b
}

// WithCurrentPrice sets a custom current price.
func (b *PositionBuilder) WithCurrentPrice(price float64) *PositionBuilder {
	b.CurrentPrice = price
	return b
}

// WithDisplayColor sets a custom display color.
func (b *PositionBuilder) WithDisplayColor(color string) *PositionBuilder {
	b.DisplayColor = color
	return b
}

// Build creates the position in the database and returns it.
func (b *PositionBuilder) Build(t *testing.T, db *sql.DB) model.Position {
	t.Helper()

	query := `
		INSERT INTO position (id, symbol, current_price, display_color)
		VALUES (?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Symbol, b.CurrentPrice, b.DisplayColor)
	if err != nil {
		t.Fatalf("Failed to create test position: %v", err)
	}

	return model.Position{
		ID:           b.ID,
		Symbol:       b.Symbol,
		CurrentPrice: b.CurrentPrice,
		DisplayColor: b.DisplayColor,
	}
}

// LotBuilder provides a fluent interface for creating test lots.
//
// Example usage:
//
//	lot := testutil.NewLot(position.ID).
//	    WithQuantity(0.5).
//	    WithUnitPrice(48000).
//	    WithDate("2024-01-15").
//	    Build(t, db)
type LotBuilder struct {
	ID         string
	PositionID string
	Date       string
	Quantity   float64
	UnitPrice  float64
}

// NewLot creates a LotBuilder for the given position with sensible defaults.
func NewLot(positionID string) *LotBuilder {
	return &LotBuilder{
		ID:         MakeID(),
		PositionID: positionID,
		Date:       "2024-01-15",
		Quantity:   1,
		UnitPrice:  100,
	}
}

// WithID sets a custom ID.
func (b *LotBuilder) WithID(id string) *LotBuilder {
	b.ID = id
	return b
}

// WithDate sets a custom date (format: 2006-01-02).
func (b *LotBuilder) WithDate(date string) *LotBuilder {
	b.Date = date
	return b
}

// WithQuantity sets a custom signed quantity.
func (b *LotBuilder) WithQuantity(quantity float64) *LotBuilder {
	b.Quantity = quantity
	return b
}

// WithUnitPrice sets a custom unit price.
func (b *LotBuilder) WithUnitPrice(price float64) *LotBuilder {
	b.UnitPrice = price
	return b
}

// Build creates the lot in the database and returns it. The kind is derived
// from the quantity sign, the same rule the lot service applies.
func (b *LotBuilder) Build(t *testing.T, db *sql.DB) model.Lot {
	t.Helper()

	kind := model.LotKindBuy
	if b.Quantity < 0 {
		kind = model.LotKindSell
	}

	query := `
		INSERT INTO lot (id, position_id, date, kind, quantity, unit_price)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.PositionID, b.Date, string(kind), b.Quantity, b.UnitPrice)
	if err != nil {
		t.Fatalf("Failed to create test lot: %v", err)
	}

	date, err := time.Parse(model.DateLayout, b.Date)
	if err != nil {
		t.Fatalf("Invalid test lot date %q: %v", b.Date, err)
	}

	return model.Lot{
		ID:         b.ID,
		PositionID: b.PositionID,
		Date:       date,
		Kind:       kind,
		Quantity:   b.Quantity,
		UnitPrice:  b.UnitPrice,
	}
}

// Convenience functions

// CreatePosition creates a position with the given symbol and default values.
func CreatePosition(t *testing.T, db *sql.DB, symbol string, currentPrice float64) model.Position {
	t.Helper()
	return NewPosition().WithSymbol(symbol).WithCurrentPrice(currentPrice).Build(t, db)
}

// CreateLot creates a lot for the given position.
func CreateLot(t *testing.T, db *sql.DB, positionID, date string, quantity, unitPrice float64) model.Lot {
	t.Helper()
	return NewLot(positionID).
		WithDate(date).
		WithQuantity(quantity).
		WithUnitPrice(unitPrice).
		Build(t, db)
}

// MakeID generates a unique UUID for test entities.
func MakeID() string {
	return uuid.New().String()
}
