package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"petshop/internal/facades"
	"petshop/internal/logger"
	"petshop/internal/models"
)

// PhotoFetcher defines the interface that the image lookup client must implement.
type PhotoFetcher interface {
	FetchRandomImage(ctx context.Context, breed string) (string, error)
}

// DogPhotoResponse represents a successful photo lookup
// swagger:model DogPhotoResponse
type DogPhotoResponse struct {
	// Status is always "success"
	// example: success
	Status string `json:"status"`

	// Breed that was looked up
	// example: husky
	Breed string `json:"breed"`

	// Photo URL returned by the upstream
	// example: https://images.dog.ceo/breeds/husky/n02110185_1469.jpg
	PhotoURL string `json:"photo_url"`
}

// NewDogPhotoHandler returns an HTTP handler for the photo pass-through lookup.
// @Summary Fetch a dog photo
// @Description Fetches a random photo URL for the breed from the upstream image service
// @Tags photos
// @Produce json
// @Param breed query string true "Dog breed"
// @Success 200 {object} handlers.DogPhotoResponse "Photo URL"
// @Failure 400 {object} models.StatusResponse "Missing breed"
// @Failure 502 {object} models.StatusResponse "Upstream error"
// @Failure 504 {object} models.StatusResponse "Upstream timeout"
// @Router /dog_photo [get]
func NewDogPhotoHandler(fetcher PhotoFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		breed := strings.TrimSpace(r.URL.Query().Get("breed"))
		if breed == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.Error("breed query parameter is required"))
			return
		}

		photoURL, err := fetcher.FetchRandomImage(r.Context(), breed)
		if err != nil {
			switch {
			case errors.Is(err, facades.ErrUpstreamTimeout):
				w.WriteHeader(http.StatusGatewayTimeout)
				json.NewEncoder(w).Encode(models.Error("Image service timed out"))
			case errors.Is(err, facades.ErrUpstreamResponse):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(models.Error("Image service unavailable"))
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.Error("Internal server error"))
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DogPhotoResponse{
			Status:   models.StatusSuccess,
			Breed:    breed,
			PhotoURL: photoURL,
		})
	}
}
