package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cryptotracker/backend/internal/api/response"
	"github.com/cryptotracker/backend/internal/apperrors"
	"github.com/cryptotracker/backend/internal/engine"
	"github.com/cryptotracker/backend/internal/service"
)

// PortfolioHandler handles HTTP requests for the cross-position views: the
// overview stats, the chart series, and per-date transaction narratives.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// PerformerResponse represents one position's synthetic daily change. Change
// is null when the position's net quantity is zero (the underlying ratio is
// mathematically undefined).
type PerformerResponse struct {
	Symbol string   `json:"symbol"`
	Change *float64 `json:"change"`
	Value  float64  `json:"value"`
}

// OverviewResponse represents the portfolio-level stats shown above the chart.
// TopPerformer and WorstPerformer are null for an empty portfolio.
type OverviewResponse struct {
	TotalValue     float64            `json:"totalValue"`
	TopPerformer   *PerformerResponse `json:"topPerformer"`
	WorstPerformer *PerformerResponse `json:"worstPerformer"`
}

// Overview handles GET requests to retrieve the portfolio overview stats.
//
// Endpoint: GET /api/portfolio/overview
// Response: 200 OK with OverviewResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) Overview(w http.ResponseWriter, _ *http.Request) {
	overview, err := h.portfolioService.Overview()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveOverview.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, OverviewResponse{
		TotalValue:     overview.TotalValue,
		TopPerformer:   performerResponse(overview.TopPerformer),
		WorstPerformer: performerResponse(overview.WorstPerformer),
	})
}

// ChartDatasetResponse is one position's line on the shared date axis.
type ChartDatasetResponse struct {
	Symbol string    `json:"symbol"`
	Color  string    `json:"color"`
	Values []float64 `json:"values"`
}

// ChartResponse is the chart payload: the ascending date axis shared by all
// positions and one dataset per position.
type ChartResponse struct {
	Dates    []string               `json:"dates"`
	Datasets []ChartDatasetResponse `json:"datasets"`
}

// Chart handles GET requests to retrieve the multi-position valuation series.
//
// Endpoint: GET /api/portfolio/chart
// Response: 200 OK with ChartResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) Chart(w http.ResponseWriter, _ *http.Request) {
	chart, err := h.portfolioService.ChartSeries()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveChart.Error(), err.Error())
		return
	}

	datasets := make([]ChartDatasetResponse, len(chart.Datasets))
	for i, d := range chart.Datasets {
		datasets[i] = ChartDatasetResponse{
			Symbol: d.Symbol,
			Color:  d.Color,
			Values: d.Values,
		}
	}

	respondJSON(w, http.StatusOK, ChartResponse{
		Dates:    chart.Dates,
		Datasets: datasets,
	})
}

// NarrativeResponse carries the tooltip lines for one position and date.
// Lines is empty when no lot exists on the date.
type NarrativeResponse struct {
	Lines []string `json:"lines"`
}

// Narrative handles GET requests to retrieve the tooltip narrative for a
// position's lot on a specific date.
//
// Endpoint: GET /api/position/{uuid}/narrative?date=YYYY-MM-DD
// Response: 200 OK with NarrativeResponse
// Error: 400 Bad Request if the date parameter is missing or unparseable
// Error: 404 Not Found if position not found
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) Narrative(w http.ResponseWriter, r *http.Request) {
	positionID := chi.URLParam(r, "uuid")

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		response.RespondError(w, http.StatusBadRequest, "date is required", "")
		return
	}

	date, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
		return
	}

	lines, err := h.portfolioService.Narrative(positionID, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrPositionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPositionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePosition.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, NarrativeResponse{Lines: lines})
}

// performerResponse maps an engine performance entry to the response shape.
func performerResponse(p *engine.Performance) *PerformerResponse {
	if p == nil {
		return nil
	}
	return &PerformerResponse{
		Symbol: p.Symbol,
		Change: response.Finite(p.Change),
		Value:  p.Value,
	}
}
