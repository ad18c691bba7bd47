package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cryptotracker/backend/internal/api/response"
	"github.com/cryptotracker/backend/internal/apperrors"
	"github.com/cryptotracker/backend/internal/model"
	"github.com/cryptotracker/backend/internal/service"
)

// PositionHandler handles HTTP requests for position endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the positionService.
type PositionHandler struct {
	positionService *service.PositionService
}

// NewPositionHandler creates a new PositionHandler with the provided service dependency.
func NewPositionHandler(positionService *service.PositionService) *PositionHandler {
	return &PositionHandler{
		positionService: positionService,
	}
}

// LotResponse represents a lot together with its profit/loss against the
// position's current price. ProfitPercentage is null when the lot's gross
// amount is zero.
type LotResponse struct {
	ID               string   `json:"id"`
	Date             string   `json:"date"`
	Kind             string   `json:"kind"`
	Quantity         float64  `json:"quantity"`
	UnitPrice        float64  `json:"unitPrice"`
	GrossAmount      float64  `json:"grossAmount"`
	Profit           float64  `json:"profit"`
	ProfitPercentage *float64 `json:"profitPercentage"`
}

// PositionResponse represents a position with its evaluated lots.
type PositionResponse struct {
	ID           string        `json:"id"`
	Symbol       string        `json:"symbol"`
	CurrentPrice float64       `json:"currentPrice"`
	DisplayColor string        `json:"displayColor"`
	Lots         []LotResponse `json:"lots"`
}

// Positions handles GET requests to retrieve all positions with their lots.
//
// Endpoint: GET /api/position
// Response: 200 OK with array of PositionResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *PositionHandler) Positions(w http.ResponseWriter, _ *http.Request) {
	positions, err := h.positionService.ListPositions()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePositions.Error(), err.Error())
		return
	}

	resp := make([]PositionResponse, len(positions))
	for i, p := range positions {
		resp[i] = buildPositionResponse(h.positionService, p)
	}

	respondJSON(w, http.StatusOK, resp)
}

// Position handles GET requests to retrieve a single position by ID.
//
// Endpoint: GET /api/position/{uuid}
// Response: 200 OK with PositionResponse
// Error: 400 Bad Request if position ID is invalid (validated by middleware)
// Error: 404 Not Found if position not found
// Error: 500 Internal Server Error if retrieval fails
func (h *PositionHandler) Position(w http.ResponseWriter, r *http.Request) {
	positionID := chi.URLParam(r, "uuid")

	position, err := h.positionService.GetPosition(positionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPositionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPositionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePosition.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, buildPositionResponse(h.positionService, position))
}

// SummaryResponse represents a position's aggregate metrics. ProfitPercentage
// and AveragePurchasePrice are null when mathematically undefined (zero cost
// basis or zero net quantity).
type SummaryResponse struct {
	TotalInvested        float64  `json:"totalInvested"`
	CurrentValue         float64  `json:"currentValue"`
	TotalProfit          float64  `json:"totalProfit"`
	ProfitPercentage     *float64 `json:"profitPercentage"`
	TotalQuantity        float64  `json:"totalQuantity"`
	AveragePurchasePrice *float64 `json:"averagePurchasePrice"`
}

// Summary handles GET requests to retrieve a position's aggregate metrics.
//
// Endpoint: GET /api/position/{uuid}/summary
// Response: 200 OK with SummaryResponse
// Error: 400 Bad Request if position ID is invalid (validated by middleware)
// Error: 404 Not Found if position not found
// Error: 500 Internal Server Error if retrieval fails
func (h *PositionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	positionID := chi.URLParam(r, "uuid")

	summary, err := h.positionService.GetSummary(positionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPositionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPositionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePosition.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, SummaryResponse{
		TotalInvested:        summary.TotalInvested,
		CurrentValue:         summary.CurrentValue,
		TotalProfit:          summary.TotalProfit,
		ProfitPercentage:     response.Finite(summary.ProfitPercentage),
		TotalQuantity:        summary.TotalQuantity,
		AveragePurchasePrice: response.Finite(summary.AveragePurchasePrice),
	})
}

// buildPositionResponse maps a position and its evaluated lots to the response shape.
func buildPositionResponse(positionService *service.PositionService, p model.Position) PositionResponse {
	lots := make([]LotResponse, 0, len(p.Lots))
	for _, evaluated := range positionService.EvaluateLots(p) {
		lots = append(lots, LotResponse{
			ID:               evaluated.Lot.ID,
			Date:             evaluated.Lot.Day(),
			Kind:             string(evaluated.Lot.Kind),
			Quantity:         evaluated.Lot.Quantity,
			UnitPrice:        evaluated.Lot.UnitPrice,
			GrossAmount:      evaluated.Result.GrossAmount,
			Profit:           evaluated.Result.Profit,
			ProfitPercentage: response.Finite(evaluated.Result.ProfitPercentage),
		})
	}

	return PositionResponse{
		ID:           p.ID,
		Symbol:       p.Symbol,
		CurrentPrice: p.CurrentPrice,
		DisplayColor: p.DisplayColor,
		Lots:         lots,
	}
}
