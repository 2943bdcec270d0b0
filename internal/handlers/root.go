package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-missions/internal/models"
)

// RootResponse is the liveness answer of the API root
// swagger:model RootResponse
type RootResponse struct {
	// example: success
	Status string `json:"status"`
	// example: Mission tracker API is running
	Message string `json:"message"`
}

// NewRootHandler returns a liveness handler.
// @Summary Liveness
// @Tags health
// @Produce json
// @Success 200 {object} handlers.RootResponse
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RootResponse{
			Status:  models.StatusSuccess,
			Message: "Mission tracker API is running",
		})
	}
}
