package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-missions/internal/models"
)

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Status: models.StatusError,
		Error:  msg,
	})
}
