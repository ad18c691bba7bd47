package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cryptotracker/backend/internal/api/request"
	"github.com/cryptotracker/backend/internal/api/response"
	"github.com/cryptotracker/backend/internal/apperrors"
	"github.com/cryptotracker/backend/internal/service"
	"github.com/cryptotracker/backend/internal/validation"
)

// LotHandler handles HTTP requests for lot submission and deletion.
type LotHandler struct {
	lotService      *service.LotService
	positionService *service.PositionService
}

// NewLotHandler creates a new LotHandler with the provided service dependencies.
func NewLotHandler(lotService *service.LotService, positionService *service.PositionService) *LotHandler {
	return &LotHandler{
		lotService:      lotService,
		positionService: positionService,
	}
}

// CreateLot handles POST requests to record a new lot.
// Validates the request body and either appends the lot to the existing
// position for the symbol (case-insensitive match, overwriting its current
// price) or creates a new position.
//
// Endpoint: POST /api/lot
// Request Body: CreateLotRequest (symbol, quantity, unitPrice, date, currentPrice)
// Response: 201 Created with the affected PositionResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *LotHandler) CreateLot(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateLotRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateLot(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	position, err := h.lotService.CreateLot(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create lot", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, buildPositionResponse(h.positionService, *position))
}

// DeleteLot handles DELETE requests to remove a lot. Deleting the last lot of
// a position removes the position entirely.
//
// Endpoint: DELETE /api/lot/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if lot ID is invalid (validated by middleware)
// Error: 404 Not Found if lot not found
// Error: 500 Internal Server Error if deletion fails
func (h *LotHandler) DeleteLot(w http.ResponseWriter, r *http.Request) {
	lotID := chi.URLParam(r, "uuid")

	if err := h.lotService.DeleteLot(r.Context(), lotID); err != nil {
		if errors.Is(err, apperrors.ErrLotNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrLotNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete lot", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
