package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"petshop/internal/logger"
	"petshop/internal/models"
	"petshop/internal/services"
)

// PetGetter defines the interface that the pet retrieval service must implement.
type PetGetter interface {
	GetPet(ctx context.Context, petID int64) (*models.PetDB, error)
}

// NewGetPetHandler returns an HTTP handler fetching one pet by ID.
// @Summary Get pet by ID
// @Description Returns the pet with the given ID
// @Tags pets
// @Produce json
// @Param id path int true "Pet ID"
// @Success 200 {object} models.PetDB "Pet"
// @Failure 400 {object} models.StatusResponse "Invalid pet ID"
// @Failure 404 {object} models.StatusResponse "Pet not found"
// @Router /get-pet-by-id/{id} [get]
func NewGetPetHandler(svc PetGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		petID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Error("invalid pet id"))
			return
		}

		pet, err := svc.GetPet(r.Context(), petID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPetNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.Error("Pet not found"))
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.Error("Error fetching pet"))
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(pet)
	}
}
