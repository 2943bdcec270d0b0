package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/models"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

// ProfileGetter reads the profile of a user.
type ProfileGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
}

// ProfileUpdater applies partial profile updates.
type ProfileUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, req models.ProfileUpdateRequest) (*models.UserDB, error)
}

// ProfileDeleter deletes accounts.
type ProfileDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// NewGetProfileHandler returns an HTTP handler for reading the caller's profile.
// @Summary Get profile
// @Description Returns the user joined with its stats, level, experience and initials
// @Tags profile
// @Produce json
// @Success 200 {object} models.ProfileResponse
// @Failure 401 {object} models.ErrorResponse "Missing token"
// @Failure 403 {object} models.ErrorResponse "Invalid or expired token"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /user/profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		profile, err := svc.Get(r.Context(), uid)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.ProfileResponse{
			Status:  models.StatusSuccess,
			Profile: *profile,
		})
	}
}

// NewUpdateProfileHandler returns an HTTP handler for partial profile updates.
// @Summary Update profile
// @Description Updates name, email and/or password. At least one field is required.
// @Tags profile
// @Accept json
// @Produce json
// @Param profileUpdateRequest body models.ProfileUpdateRequest true "Fields to update"
// @Success 200 {object} models.ProfileUpdateResponse
// @Failure 400 {object} models.ErrorResponse "No fields or invalid request"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 409 {object} models.ErrorResponse "Email already in use"
// @Router /user/profile [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req models.ProfileUpdateRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := svc.Update(r.Context(), uid, req)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.ProfileUpdateResponse{
			Status:  models.StatusSuccess,
			Message: "Profile updated successfully",
			User:    user.Public(),
		})
	}
}

// NewDeleteProfileHandler returns an HTTP handler deleting the caller's account.
// @Summary Delete account
// @Description Deletes the user together with its missions, completions and stats
// @Tags profile
// @Produce json
// @Success 200 {object} models.ProfileDeleteResponse
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /user/profile [delete]
// @Security BearerAuth
func NewDeleteProfileHandler(svc ProfileDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		user, err := svc.Delete(r.Context(), uid)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.ProfileDeleteResponse{
			Status:      models.StatusSuccess,
			Message:     "Account deleted successfully",
			DeletedUser: user.Public(),
		})
	}
}
