// Package client talks to the mission tracker API and keeps a local
// mirror of the caller's missions.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/models"
	"github.com/sbilibin2017/gw-missions/internal/stats"
)

// ErrConnection wraps transport failures: the server was not reached
// or its answer could not be read.
var ErrConnection = errors.New("connection error")

// APIError is an error payload returned by the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// DefaultTimeout bounds a single API call.
const DefaultTimeout = 10 * time.Second

// APIClient is a thin JSON client for the mission tracker API.
type APIClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// Opt configures an APIClient.
type Opt func(*APIClient)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Opt {
	return func(a *APIClient) {
		a.http = c
	}
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Opt {
	return func(a *APIClient) {
		a.token = token
	}
}

// NewAPIClient creates a client for the API rooted at baseURL.
func NewAPIClient(baseURL string, opts ...Opt) *APIClient {
	a := &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetToken replaces the bearer token.
func (a *APIClient) SetToken(token string) {
	a.mu.Lock()
	a.token = token
	a.mu.Unlock()
}

// Token returns the current bearer token.
func (a *APIClient) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// Register creates an account and stores the returned token.
func (a *APIClient) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	var resp models.RegisterResponse
	if err := a.do(ctx, http.MethodPost, "/register", req, &resp); err != nil {
		return "", err
	}
	a.SetToken(resp.Token)
	return resp.Token, nil
}

// Login authenticates and stores the returned token.
func (a *APIClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := a.do(ctx, http.MethodPost, "/login", req, &resp); err != nil {
		return nil, err
	}
	a.SetToken(resp.Token)
	return &resp, nil
}

// Profile returns the caller's profile.
func (a *APIClient) Profile(ctx context.Context) (*models.Profile, error) {
	var resp models.ProfileResponse
	if err := a.do(ctx, http.MethodGet, "/user/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Profile, nil
}

// ListMissions returns the caller's missions, newest first.
func (a *APIClient) ListMissions(ctx context.Context) ([]models.MissionDB, error) {
	var resp models.MissionListResponse
	if err := a.do(ctx, http.MethodGet, "/missions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Missions, nil
}

// CreateMission creates a single mission.
func (a *APIClient) CreateMission(ctx context.Context, req models.MissionCreateRequest) (*models.MissionDB, error) {
	var resp models.MissionResponse
	if err := a.do(ctx, http.MethodPost, "/missions", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Mission, nil
}

// CompleteMission completes a mission and returns the server's answer.
func (a *APIClient) CompleteMission(ctx context.Context, id uuid.UUID) (*models.MissionCompleteResponse, error) {
	var resp models.MissionCompleteResponse
	if err := a.do(ctx, http.MethodPost, "/missions/"+id.String()+"/complete", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteMission deletes a mission.
func (a *APIClient) DeleteMission(ctx context.Context, id uuid.UUID) (*models.MissionDB, error) {
	var resp models.MissionResponse
	if err := a.do(ctx, http.MethodDelete, "/missions/"+id.String(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Mission, nil
}

// SyncMissions replaces the server-side mission list with req.
func (a *APIClient) SyncMissions(ctx context.Context, req models.MissionSyncRequest) ([]models.MissionDB, error) {
	var resp models.MissionListResponse
	if err := a.do(ctx, http.MethodPut, "/missions", req, &resp); err != nil {
		return nil, err
	}
	return resp.Missions, nil
}

// Stats returns the server computed dashboard summary.
func (a *APIClient) Stats(ctx context.Context) (stats.Summary, error) {
	var resp struct {
		Stats stats.Summary `json:"stats"`
	}
	if err := a.do(ctx, http.MethodGet, "/stats", nil, &resp); err != nil {
		return stats.Summary{}, err
	}
	return resp.Stats, nil
}

func (a *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := a.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var payload models.ErrorResponse
		if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrConnection, err)
	}
	return nil
}
