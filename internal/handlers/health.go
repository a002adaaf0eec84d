package handlers

import (
	"encoding/json"
	"net/http"

	"petshop/internal/logger"
	"petshop/internal/models"
)

// NewHealthHandler returns an HTTP handler for the health check.
// @Summary Health check
// @Description Verifies the service is running
// @Tags health
// @Produce json
// @Success 200 {object} models.StatusResponse "Service is running"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Log.Info("Health check endpoint hit")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.Success("Service is running"))
	}
}
