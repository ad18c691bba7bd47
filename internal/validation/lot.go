package validation

import (
	"strings"
	"time"

	"github.com/cryptotracker/backend/internal/api/request"
)

// ValidateCreateLot validates a lot submission.
//
// Required fields:
//   - symbol: non-empty after trimming
//   - quantity: non-zero (positive records a buy, negative a sell)
//   - unitPrice: strictly positive
//   - currentPrice: strictly positive
//   - date: YYYY-MM-DD format
//
// The valuation engine performs no validation of its own; this is the single
// gate through which lots enter the model.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateLot(req request.CreateLotRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if req.Quantity == 0.0 {
		errors["quantity"] = "quantity must be non-zero"
	}

	if req.UnitPrice <= 0.0 {
		errors["unitPrice"] = "unitPrice must be positive"
	}

	if req.CurrentPrice <= 0.0 {
		errors["currentPrice"] = "currentPrice must be positive"
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
