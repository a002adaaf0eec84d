package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"petshop/internal/logger"
	"petshop/internal/middlewares"
	"petshop/internal/models"
	"petshop/internal/services"
)

// PriceUpdater defines the interface that the price update service must implement.
type PriceUpdater interface {
	UpdatePrice(ctx context.Context, petID int64, newPrice float64, actor string) error
}

// UpdatePriceRequest represents the JSON body for a price update
// swagger:model UpdatePriceRequest
type UpdatePriceRequest struct {
	// New price, must be non-negative
	// required: true
	// example: 550
	NewPrice *float64 `json:"new_price"`
}

// NewUpdatePriceHandler returns an HTTP handler for pet price updates.
// @Summary Update pet price
// @Description Sets a new non-negative price for the pet
// @Tags pets
// @Accept json
// @Produce json
// @Param id path int true "Pet ID"
// @Param updatePriceRequest body handlers.UpdatePriceRequest true "Price update request"
// @Success 200 {object} models.StatusResponse "Price updated successfully"
// @Failure 400 {object} models.StatusResponse "Invalid request body"
// @Failure 401 {object} models.StatusResponse "Unauthorized"
// @Failure 404 {object} models.StatusResponse "Pet not found"
// @Router /update-price/{id}/price [put]
// @Security SessionCookie
func NewUpdatePriceHandler(svc PriceUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		petID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Error("invalid pet id"))
			return
		}

		var req UpdatePriceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Error("invalid request body"))
			return
		}

		if req.NewPrice == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Error("new_price is required"))
			return
		}

		actor := middlewares.GetUsernameFromContext(r.Context())

		if err := svc.UpdatePrice(r.Context(), petID, *req.NewPrice, actor); err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.Error(err.Error()))
			case errors.Is(err, services.ErrPetNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.Error("Pet not found"))
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.Error("Internal server error"))
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.Success("Price updated successfully"))
	}
}
