package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/jwt"
	"github.com/sbilibin2017/gw-missions/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAuthedRequest builds a request that already passed the auth middleware.
// A non-empty id is exposed as the {id} route parameter.
func newAuthedRequest(method, target string, body io.Reader, uid uuid.UUID, id string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := jwt.WithClaims(req.Context(), &jwt.Claims{UserID: uid, Email: "ada@example.com"})
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{fmt.Errorf("%w: title is required", services.ErrValidation), http.StatusBadRequest, "validation failed: title is required"},
		{services.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{services.ErrEmailTaken, http.StatusConflict, "Email already in use"},
		{services.ErrMissionConflict, http.StatusConflict, "Mission id already in use"},
		{services.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{services.ErrMissionNotFound, http.StatusNotFound, "Mission not found"},
		{services.ErrMissionAlreadyCompleted, http.StatusBadRequest, "Mission already completed"},
		{errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.expectedMsg, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeServiceError(context.Background(), rr, tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			resp := decodeMap(t, rr)
			assert.Equal(t, "error", resp["status"])
			assert.Equal(t, tt.expectedMsg, resp["error"])
		})
	}
}

func TestUserID_MissingClaims(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)

	_, ok := userID(rr, req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMissionID(t *testing.T) {
	id := uuid.New()

	rr := httptest.NewRecorder()
	got, ok := missionID(rr, newAuthedRequest(http.MethodGet, "/", nil, uuid.New(), id.String()))
	assert.True(t, ok)
	assert.Equal(t, id, got)

	rr = httptest.NewRecorder()
	_, ok = missionID(rr, newAuthedRequest(http.MethodGet, "/", nil, uuid.New(), "not-a-uuid"))
	assert.False(t, ok)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDecodeBody_Invalid(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{invalid json}"))

	var v struct{}
	assert.False(t, decodeBody(rr, req, &v))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid request body", decodeMap(t, rr)["error"])
}
