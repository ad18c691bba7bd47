package handlers_test

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cryptotracker/backend/internal/api/handlers"
	"github.com/cryptotracker/backend/internal/testutil"
)

// TestPortfolioHandler_Overview tests the GET /api/portfolio/overview endpoint.
//
// WHY: The overview feeds the dashboard header. An empty portfolio must be a
// valid response (zero total, null performer cards), not an error.
func TestPortfolioHandler_Overview(t *testing.T) {
	t.Run("GET returns zero overview for empty portfolio", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		handler := handlers.NewPortfolioHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/overview", nil)
		w := httptest.NewRecorder()

		// Execute
		handler.Overview(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response handlers.OverviewResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.TotalValue != 0 {
			t.Errorf("TotalValue = %v, want 0", response.TotalValue)
		}
		if response.TopPerformer != nil || response.WorstPerformer != nil {
			t.Errorf("Expected null performers, got top=%+v worst=%+v",
				response.TopPerformer, response.WorstPerformer)
		}
	})

	t.Run("GET returns totals and performers", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		handler := handlers.NewPortfolioHandler(svc)

		btc := testutil.CreatePosition(t, db, "BTC", 52000)
		testutil.CreateLot(t, db, btc.ID, "2024-01-15", 0.5, 48000)
		eth := testutil.CreatePosition(t, db, "ETH", 3200)
		testutil.CreateLot(t, db, eth.ID, "2024-01-10", 2.5, 2800)

		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/overview", nil)
		w := httptest.NewRecorder()

		// Execute
		handler.Overview(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response handlers.OverviewResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		want := 0.5*52000 + 2.5*3200
		if math.Abs(response.TotalValue-want) > 1e-9 {
			t.Errorf("TotalValue = %v, want %v", response.TotalValue, want)
		}
		if response.TopPerformer == nil || response.TopPerformer.Change == nil {
			t.Fatal("Expected top performer with a finite change")
		}
	})

	t.Run("GET reports null change for a fully offset position", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		handler := handlers.NewPortfolioHandler(svc)

		sol := testutil.CreatePosition(t, db, "SOL", 110)
		testutil.CreateLot(t, db, sol.ID, "2024-01-05", 10, 100)
		testutil.CreateLot(t, db, sol.ID, "2024-01-20", -10, 115)

		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/overview", nil)
		w := httptest.NewRecorder()

		// Execute
		handler.Overview(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response handlers.OverviewResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.TopPerformer == nil {
			t.Fatal("Expected a performer entry for the offset position")
		}
		if response.TopPerformer.Change != nil {
			t.Errorf("Change = %v, want null", *response.TopPerformer.Change)
		}
	})
}

// TestPortfolioHandler_Chart tests the GET /api/portfolio/chart endpoint.
func TestPortfolioHandler_Chart(t *testing.T) {
	t.Run("GET returns shared axis with one dataset per position", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		handler := handlers.NewPortfolioHandler(svc)

		btc := testutil.CreatePosition(t, db, "BTC", 52000)
		testutil.CreateLot(t, db, btc.ID, "2024-01-15", 0.5, 48000)
		eth := testutil.CreatePosition(t, db, "ETH", 3200)
		testutil.CreateLot(t, db, eth.ID, "2024-01-10", 2.5, 2800)

		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/chart", nil)
		w := httptest.NewRecorder()

		// Execute
		handler.Chart(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response handlers.ChartResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response.Dates) != 2 {
			t.Errorf("Expected 2 axis dates, got %d", len(response.Dates))
		}
		if len(response.Datasets) != 2 {
			t.Fatalf("Expected 2 datasets, got %d", len(response.Datasets))
		}
		for _, ds := range response.Datasets {
			if len(ds.Values) != len(response.Dates) {
				t.Errorf("Dataset %s has %d values for %d dates",
					ds.Symbol, len(ds.Values), len(response.Dates))
			}
		}
	})
}

// TestPortfolioHandler_Narrative tests the GET /api/position/{uuid}/narrative endpoint.
//
// WHY: The narrative endpoint has the strictest parameter contract of the read
// paths: date is mandatory and day-formatted, and a date with no transaction
// is a valid empty response rather than a 404.
func TestPortfolioHandler_Narrative(t *testing.T) {
	t.Run("GET returns narrative lines for a transaction date", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		handler := handlers.NewPortfolioHandler(svc)

		position := testutil.CreatePosition(t, db, "BTC", 52000)
		testutil.CreateLot(t, db, position.ID, "2024-01-15", 0.5, 48000)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/position/"+position.ID+"/narrative?date=2024-01-15",
			map[string]string{"uuid": position.ID},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.Narrative(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response handlers.NarrativeResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response.Lines) != 4 {
			t.Fatalf("Expected 4 lines, got %d: %v", len(response.Lines), response.Lines)
		}
		if response.Lines[0] != "BTC Buy" {
			t.Errorf("First line = %q, want %q", response.Lines[0], "BTC Buy")
		}
	})

	t.Run("GET returns empty lines for a quiet date", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		handler := handlers.NewPortfolioHandler(svc)

		position := testutil.CreatePosition(t, db, "BTC", 52000)
		testutil.CreateLot(t, db, position.ID, "2024-01-15", 0.5, 48000)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/position/"+position.ID+"/narrative?date=2024-06-01",
			map[string]string{"uuid": position.ID},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.Narrative(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response handlers.NarrativeResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response.Lines) != 0 {
			t.Errorf("Expected empty lines, got %v", response.Lines)
		}
	})

	t.Run("GET returns 400 when date is missing", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		handler := handlers.NewPortfolioHandler(svc)

		position := testutil.CreatePosition(t, db, "BTC", 52000)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/position/"+position.ID+"/narrative",
			map[string]string{"uuid": position.ID},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.Narrative(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("GET returns 400 for malformed date", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		handler := handlers.NewPortfolioHandler(svc)

		position := testutil.CreatePosition(t, db, "BTC", 52000)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/position/"+position.ID+"/narrative?date=01-15-2024",
			map[string]string{"uuid": position.ID},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.Narrative(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("GET returns 404 for unknown position", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		handler := handlers.NewPortfolioHandler(svc)

		unknownID := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/position/"+unknownID+"/narrative?date=2024-01-15",
			map[string]string{"uuid": unknownID},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.Narrative(w, req)

		// Assert
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}
