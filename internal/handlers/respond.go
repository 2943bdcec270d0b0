package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/jwt"
	"github.com/sbilibin2017/gw-missions/internal/logger"
	"github.com/sbilibin2017/gw-missions/internal/models"
	"github.com/sbilibin2017/gw-missions/internal/services"
)

const msgInternal = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{
		Status: models.StatusError,
		Error:  msg,
	})
}

// decodeBody decodes the JSON body of r into v, answering 400 when it is malformed.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeServiceError maps service errors onto HTTP statuses. Unexpected
// errors are logged and answered with a generic 500.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrEmailTaken):
		writeError(w, http.StatusConflict, "Email already in use")
	case errors.Is(err, services.ErrMissionConflict):
		writeError(w, http.StatusConflict, "Mission id already in use")
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrMissionNotFound):
		writeError(w, http.StatusNotFound, "Mission not found")
	case errors.Is(err, services.ErrMissionAlreadyCompleted):
		writeError(w, http.StatusBadRequest, "Mission already completed")
	default:
		logger.FromContext(ctx).Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

// userID returns the id of the authenticated caller. Routes using it sit
// behind the auth middleware, so missing claims are answered with 401.
func userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, ok := jwt.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authorization token required")
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// missionID parses the {id} route parameter. A malformed id cannot
// name an existing mission and is answered with 404.
func missionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Mission not found")
		return uuid.Nil, false
	}
	return id, true
}
