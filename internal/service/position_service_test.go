package service_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cryptotracker/backend/internal/apperrors"
	"github.com/cryptotracker/backend/internal/model"
	"github.com/cryptotracker/backend/internal/testutil"
)

// TestPositionService_ListPositions tests position retrieval with lots.
//
// WHY: Every portfolio view starts from this list. Positions must come back in
// creation order with their lots attached in date order, or the chart datasets
// and lot tables render shuffled.
func TestPositionService_ListPositions(t *testing.T) {
	t.Run("returns empty slice when no positions exist", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		// Execute
		positions, err := svc.ListPositions()

		// Assert
		if err != nil {
			t.Fatalf("ListPositions() returned unexpected error: %v", err)
		}
		if len(positions) != 0 {
			t.Errorf("Expected empty slice, got %d positions", len(positions))
		}
	})

	t.Run("attaches lots in date order", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		position := testutil.CreatePosition(t, db, "BTC", 52000)
		// Insert out of date order on purpose
		testutil.CreateLot(t, db, position.ID, "2024-02-01", 0.3, 51000)
		testutil.CreateLot(t, db, position.ID, "2024-01-15", 0.5, 48000)

		// Execute
		positions, err := svc.ListPositions()

		// Assert
		if err != nil {
			t.Fatalf("ListPositions() returned unexpected error: %v", err)
		}
		if len(positions) != 1 {
			t.Fatalf("Expected 1 position, got %d", len(positions))
		}

		lots := positions[0].Lots
		if len(lots) != 2 {
			t.Fatalf("Expected 2 lots, got %d", len(lots))
		}
		if lots[0].Day() != "2024-01-15" || lots[1].Day() != "2024-02-01" {
			t.Errorf("Lots out of date order: %s, %s", lots[0].Day(), lots[1].Day())
		}
	})

	t.Run("preserves creation order for same-second inserts", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		// All four land on the same created_at second; order must still be
		// insertion order, not a timestamp-plus-UUID tiebreak.
		symbols := []string{"BTC", "ETH", "SOL", "MATIC"}
		for _, symbol := range symbols {
			testutil.CreatePosition(t, db, symbol, 100)
		}

		// Execute
		positions, err := svc.ListPositions()

		// Assert
		if err != nil {
			t.Fatalf("ListPositions() returned unexpected error: %v", err)
		}
		if len(positions) != len(symbols) {
			t.Fatalf("Expected %d positions, got %d", len(symbols), len(positions))
		}
		for i, symbol := range symbols {
			if positions[i].Symbol != symbol {
				t.Errorf("positions[%d].Symbol = %q, want %q", i, positions[i].Symbol, symbol)
			}
		}
	})

	t.Run("returns multiple positions with their own lots", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		btc := testutil.CreatePosition(t, db, "BTC", 52000)
		eth := testutil.CreatePosition(t, db, "ETH", 3200)
		testutil.CreateLot(t, db, btc.ID, "2024-01-15", 0.5, 48000)
		testutil.CreateLot(t, db, eth.ID, "2024-01-10", 2.5, 2800)
		testutil.CreateLot(t, db, eth.ID, "2024-02-05", 1.8, 3000)

		// Execute
		positions, err := svc.ListPositions()

		// Assert
		if err != nil {
			t.Fatalf("ListPositions() returned unexpected error: %v", err)
		}
		if len(positions) != 2 {
			t.Fatalf("Expected 2 positions, got %d", len(positions))
		}

		counts := map[string]int{}
		for _, p := range positions {
			counts[p.Symbol] = len(p.Lots)
		}
		if counts["BTC"] != 1 || counts["ETH"] != 2 {
			t.Errorf("Lot counts = %v, want BTC:1 ETH:2", counts)
		}
	})
}

// TestPositionService_GetPosition tests single-position retrieval.
func TestPositionService_GetPosition(t *testing.T) {
	t.Run("returns position with lots", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		position := testutil.CreatePosition(t, db, "ETH", 3200)
		testutil.CreateLot(t, db, position.ID, "2024-01-10", 2.5, 2800)

		// Execute
		got, err := svc.GetPosition(position.ID)

		// Assert
		if err != nil {
			t.Fatalf("GetPosition() returned unexpected error: %v", err)
		}
		if got.Symbol != "ETH" {
			t.Errorf("Symbol = %q, want ETH", got.Symbol)
		}
		if len(got.Lots) != 1 {
			t.Errorf("Expected 1 lot, got %d", len(got.Lots))
		}
	})

	t.Run("returns ErrPositionNotFound for unknown ID", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		// Execute
		_, err := svc.GetPosition(testutil.MakeID())

		// Assert
		if !errors.Is(err, apperrors.ErrPositionNotFound) {
			t.Errorf("Expected ErrPositionNotFound, got %v", err)
		}
	})
}

// TestPositionService_GetSummary tests the aggregate metrics path.
//
// WHY: This is the service-level wiring of the aggregation: position and lots
// loaded from storage must produce the same numbers the engine produces on
// in-memory inputs.
func TestPositionService_GetSummary(t *testing.T) {
	t.Run("computes summary from stored lots", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		position := testutil.CreatePosition(t, db, "BTC", 52000)
		testutil.CreateLot(t, db, position.ID, "2024-01-15", 0.5, 48000)

		// Execute
		summary, err := svc.GetSummary(position.ID)

		// Assert
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}

		if summary.TotalInvested != 24000 {
			t.Errorf("TotalInvested = %v, want 24000", summary.TotalInvested)
		}
		if summary.CurrentValue != 26000 {
			t.Errorf("CurrentValue = %v, want 26000", summary.CurrentValue)
		}
		if summary.TotalProfit != 2000 {
			t.Errorf("TotalProfit = %v, want 2000", summary.TotalProfit)
		}
		if summary.AveragePurchasePrice != 48000 {
			t.Errorf("AveragePurchasePrice = %v, want 48000", summary.AveragePurchasePrice)
		}
	})

	t.Run("returns ErrPositionNotFound for unknown ID", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		// Execute
		_, err := svc.GetSummary(testutil.MakeID())

		// Assert
		if !errors.Is(err, apperrors.ErrPositionNotFound) {
			t.Errorf("Expected ErrPositionNotFound, got %v", err)
		}
	})
}

// TestPositionService_EvaluateLots tests the per-lot evaluation wiring.
func TestPositionService_EvaluateLots(t *testing.T) {
	t.Run("evaluates every lot against the current price", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPositionService(t, db)

		p := model.Position{
			CurrentPrice: 52000,
			Lots: []model.Lot{
				{Kind: model.LotKindBuy, Quantity: 0.5, UnitPrice: 48000},
				{Kind: model.LotKindSell, Quantity: -0.2, UnitPrice: 52500},
			},
		}

		// Execute
		evaluated := svc.EvaluateLots(p)

		// Assert
		if len(evaluated) != 2 {
			t.Fatalf("Expected 2 evaluated lots, got %d", len(evaluated))
		}

		if math.Abs(evaluated[0].Result.Profit-2000) > 1e-9 {
			t.Errorf("Buy profit = %v, want 2000", evaluated[0].Result.Profit)
		}
		if math.Abs(evaluated[1].Result.Profit-100) > 1e-9 {
			t.Errorf("Sell profit = %v, want 100", evaluated[1].Result.Profit)
		}
	})
}
