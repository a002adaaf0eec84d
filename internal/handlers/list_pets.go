package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"petshop/internal/logger"
	"petshop/internal/models"
)

// PetLister defines the interface that the pet listing service must implement.
type PetLister interface {
	ListPets(ctx context.Context) ([]models.PetDB, error)
}

// NewListPetsHandler returns an HTTP handler listing all pets.
// @Summary List pets
// @Description Returns all pets ordered by ID ascending
// @Tags pets
// @Produce json
// @Success 200 {array} models.PetDB "Pets"
// @Failure 500 {object} models.StatusResponse "Internal server error"
// @Router /pets [get]
func NewListPetsHandler(svc PetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		pets, err := svc.ListPets(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.Error("Error fetching pets"))
			return
		}

		// An empty inventory is still a JSON array, not null.
		if pets == nil {
			pets = []models.PetDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(pets)
	}
}
