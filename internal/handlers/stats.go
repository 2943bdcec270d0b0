package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/models"
	"github.com/sbilibin2017/gw-missions/internal/stats"
)

//go:generate mockgen -source=stats.go -destination=stats_mock.go -package=handlers

// StatsSummarizer computes the dashboard summary of a user.
type StatsSummarizer interface {
	Summary(ctx context.Context, userID uuid.UUID) (stats.Summary, error)
}

// StatsResponse wraps the dashboard summary
// swagger:model StatsResponse
type StatsResponse struct {
	// example: success
	Status string        `json:"status"`
	Stats  stats.Summary `json:"stats"`
}

// NewStatsHandler returns an HTTP handler for the caller's dashboard summary.
// @Summary Get stats
// @Description Returns mission counts, completion rate, sequence, conquests, points, level and experience
// @Tags stats
// @Produce json
// @Success 200 {object} handlers.StatsResponse
// @Failure 401 {object} models.ErrorResponse "Missing token"
// @Failure 403 {object} models.ErrorResponse "Invalid or expired token"
// @Router /stats [get]
// @Security BearerAuth
func NewStatsHandler(svc StatsSummarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		summary, err := svc.Summary(r.Context(), uid)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, StatsResponse{
			Status: models.StatusSuccess,
			Stats:  summary,
		})
	}
}
