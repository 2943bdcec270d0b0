package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/models"
	"github.com/sbilibin2017/gw-missions/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIClient_LoginStoresToken(t *testing.T) {
	userID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada@example.com", req.Email)

		json.NewEncoder(w).Encode(models.LoginResponse{
			Status: models.StatusSuccess,
			Token:  "JWT_TOKEN",
			User:   models.LoginUser{UserID: userID, Name: "Ada", Email: req.Email},
		})
	}))
	defer srv.Close()

	api := NewAPIClient(srv.URL + "/")
	resp, err := api.Login(context.Background(), models.LoginRequest{Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, userID, resp.User.UserID)
	assert.Equal(t, "JWT_TOKEN", api.Token())
}

func TestAPIClient_SendsBearerToken(t *testing.T) {
	summary := stats.Summary{TotalMissions: 2, CompletedMissions: 1, CompletionRate: 50, TotalPoints: 30}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "stats": summary})
	}))
	defer srv.Close()

	api := NewAPIClient(srv.URL, WithToken("abc"))
	got, err := api.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, summary, got)
}

func TestAPIClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse{Status: models.StatusError, Error: "Mission already completed"})
	}))
	defer srv.Close()

	api := NewAPIClient(srv.URL, WithToken("abc"))
	_, err := api.CompleteMission(context.Background(), uuid.New())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Mission already completed", apiErr.Message)
	assert.Equal(t, "Mission already completed", ErrorMessage(err))
}

func TestAPIClient_APIErrorWithoutPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewAPIClient(srv.URL).ListMissions(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestAPIClient_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewAPIClient(url).ListMissions(context.Background())
	assert.ErrorIs(t, err, ErrConnection)
	assert.Equal(t, "Server unreachable, changes are kept locally", ErrorMessage(err))
}

func TestAPIClient_SyncMissions(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/missions", r.URL.Path)

		var req models.MissionSyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Missions, 1)
		assert.Equal(t, id, *req.Missions[0].ID)
		assert.True(t, req.Missions[0].Completed)

		json.NewEncoder(w).Encode(models.MissionListResponse{
			Status:   models.StatusSuccess,
			Missions: []models.MissionDB{{ID: id, Title: "Run", RewardPoints: 30}},
		})
	}))
	defer srv.Close()

	missions, err := NewAPIClient(srv.URL).SyncMissions(context.Background(), models.MissionSyncRequest{
		Missions: []models.MissionSyncItem{{ID: &id, Title: "Run", Description: "5k", RewardPoints: 30, Completed: true}},
	})
	require.NoError(t, err)
	require.Len(t, missions, 1)
	assert.Equal(t, "Run", missions[0].Title)
}
