package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"petshop/internal/logger"
	"petshop/internal/middlewares"
	"petshop/internal/models"
	"petshop/internal/services"
)

// PetAdder defines the interface that the pet creation service must implement.
type PetAdder interface {
	AddPet(ctx context.Context, fields models.NewPetFields, actor string) (int64, error)
}

// AddPetRequest represents the JSON body for pet creation. Pointer fields
// distinguish missing values from zero values at the boundary.
// swagger:model AddPetRequest
type AddPetRequest struct {
	// Pet name
	// required: true
	// example: Buddy
	Name *string `json:"name"`

	// Age in years
	// required: true
	// example: 3
	Age *int `json:"age"`

	// Dog breed
	// required: true
	// example: Golden Retriever
	Breed *string `json:"breed"`

	// Weight in pounds
	// required: true
	// example: 30
	Weight *float64 `json:"weight"`

	// Whether the pet is kid friendly
	// required: true
	// example: true
	KidFriendly *bool `json:"kid_friendly"`

	// Sale price
	// required: true
	// example: 500
	Price *float64 `json:"price"`
}

func (req *AddPetRequest) missingField() string {
	switch {
	case req.Name == nil:
		return "name"
	case req.Age == nil:
		return "age"
	case req.Breed == nil:
		return "breed"
	case req.Weight == nil:
		return "weight"
	case req.KidFriendly == nil:
		return "kid_friendly"
	case req.Price == nil:
		return "price"
	}
	return ""
}

// NewAddPetHandler returns an HTTP handler for pet creation.
// @Summary Add a pet
// @Description Validates the fields, derives the size classification from weight, and fetches a breed photo (best-effort)
// @Tags pets
// @Accept json
// @Produce json
// @Param addPetRequest body handlers.AddPetRequest true "Pet creation request"
// @Success 201 {object} models.StatusResponse "Pet added successfully"
// @Failure 400 {object} models.StatusResponse "Invalid request body"
// @Failure 401 {object} models.StatusResponse "Unauthorized"
// @Router /pets [post]
// @Security SessionCookie
func NewAddPetHandler(svc PetAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req AddPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Error("invalid request body"))
			return
		}

		if field := req.missingField(); field != "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Error(fmt.Sprintf("%s is required", field)))
			return
		}

		fields := models.NewPetFields{
			Name:        *req.Name,
			Age:         *req.Age,
			Breed:       *req.Breed,
			Weight:      *req.Weight,
			KidFriendly: *req.KidFriendly,
			Price:       *req.Price,
		}

		actor := middlewares.GetUsernameFromContext(r.Context())

		petID, err := svc.AddPet(r.Context(), fields, actor)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.Error(err.Error()))
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.Error("Internal server error"))
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Success(fmt.Sprintf("Pet added successfully with id %d", petID)))
	}
}
