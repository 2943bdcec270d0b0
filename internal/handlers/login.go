package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-missions/internal/models"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, req models.LoginRequest) (string, *models.UserDB, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "JWT token returned"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 429 {object} models.ErrorResponse "Too many requests"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		token, user, err := svc.Login(r.Context(), req)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.LoginResponse{
			Status:  models.StatusSuccess,
			Message: "Login successful",
			Token:   token,
			User: models.LoginUser{
				UserID: user.ID,
				Name:   user.Name,
				Email:  user.Email,
			},
		})
	}
}
