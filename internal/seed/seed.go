// Package seed loads the demo portfolio the dashboard ships with.
package seed

import (
	"context"
	"fmt"

	"github.com/cryptotracker/backend/internal/api/request"
	"github.com/cryptotracker/backend/internal/service"
)

// demoLots is the sample portfolio shown on first launch. Submissions go
// through LotService.CreateLot, so symbol merging, kind derivation, and
// palette color assignment run exactly as they do for user submissions.
var demoLots = []request.CreateLotRequest{
	{Symbol: "BTC", Quantity: 0.5, UnitPrice: 48000, Date: "2024-01-15", CurrentPrice: 52000},
	{Symbol: "BTC", Quantity: 0.3, UnitPrice: 51000, Date: "2024-02-01", CurrentPrice: 52000},
	{Symbol: "BTC", Quantity: -0.2, UnitPrice: 52500, Date: "2024-02-15", CurrentPrice: 52000},
	{Symbol: "BTC", Quantity: 0.25, UnitPrice: 50000, Date: "2024-03-01", CurrentPrice: 52000},

	{Symbol: "ETH", Quantity: 2.5, UnitPrice: 2800, Date: "2024-01-10", CurrentPrice: 3200},
	{Symbol: "ETH", Quantity: 1.8, UnitPrice: 3000, Date: "2024-02-05", CurrentPrice: 3200},
	{Symbol: "ETH", Quantity: -1.5, UnitPrice: 3300, Date: "2024-02-20", CurrentPrice: 3200},
	{Symbol: "ETH", Quantity: 1.2, UnitPrice: 3100, Date: "2024-03-05", CurrentPrice: 3200},

	{Symbol: "SOL", Quantity: 15, UnitPrice: 85, Date: "2024-01-05", CurrentPrice: 110},
	{Symbol: "SOL", Quantity: -5, UnitPrice: 95, Date: "2024-01-20", CurrentPrice: 110},
	{Symbol: "SOL", Quantity: 10, UnitPrice: 100, Date: "2024-02-10", CurrentPrice: 110},
	{Symbol: "SOL", Quantity: -8, UnitPrice: 115, Date: "2024-03-01", CurrentPrice: 110},

	{Symbol: "MATIC", Quantity: 1000, UnitPrice: 0.90, Date: "2024-01-01", CurrentPrice: 1.20},
	{Symbol: "MATIC", Quantity: 500, UnitPrice: 1.05, Date: "2024-02-01", CurrentPrice: 1.20},
	{Symbol: "MATIC", Quantity: -750, UnitPrice: 1.25, Date: "2024-02-25", CurrentPrice: 1.20},
}

// Demo loads the demo portfolio through the lot service.
func Demo(ctx context.Context, lotService *service.LotService) error {
	for _, req := range demoLots {
		if _, err := lotService.CreateLot(ctx, req); err != nil {
			return fmt.Errorf("failed to seed %s lot: %w", req.Symbol, err)
		}
	}
	return nil
}
