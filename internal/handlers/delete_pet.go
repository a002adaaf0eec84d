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

// PetDeleter defines the interface that the pet deletion service must implement.
type PetDeleter interface {
	DeletePet(ctx context.Context, petID int64, actor string) error
}

// NewDeletePetHandler returns an HTTP handler for pet deletion.
// @Summary Delete a pet
// @Description Removes the pet. Its ID is never reassigned.
// @Tags pets
// @Produce json
// @Param id path int true "Pet ID"
// @Success 200 {object} models.StatusResponse "Pet deleted successfully"
// @Failure 400 {object} models.StatusResponse "Invalid pet ID"
// @Failure 401 {object} models.StatusResponse "Unauthorized"
// @Failure 404 {object} models.StatusResponse "Pet not found"
// @Router /delete-pet/{id} [delete]
// @Security SessionCookie
func NewDeletePetHandler(svc PetDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		petID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Error("invalid pet id"))
			return
		}

		actor := middlewares.GetUsernameFromContext(r.Context())

		if err := svc.DeletePet(r.Context(), petID, actor); err != nil {
			switch {
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
		json.NewEncoder(w).Encode(models.Success("Pet deleted successfully"))
	}
}
