package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-missions/internal/models"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, req models.RegisterRequest) (string, *models.UserDB, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account and logs it in. Email must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.RegisterResponse "User successfully registered"
// @Failure 400 {object} models.ErrorResponse "Missing fields or invalid request"
// @Failure 409 {object} models.ErrorResponse "Email already in use"
// @Failure 429 {object} models.ErrorResponse "Too many requests"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}

		token, _, err := svc.Register(r.Context(), req)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.RegisterResponse{
			Status:  models.StatusSuccess,
			Message: "User registered successfully",
			Token:   token,
		})
	}
}
