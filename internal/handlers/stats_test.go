package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	summary := stats.Summary{
		TotalMissions:     2,
		CompletedMissions: 1,
		CompletionRate:    50,
		Sequence:          12,
		TotalPoints:       50,
		Level:             1,
		Experience:        50,
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockStatsSummarizer(ctrl)
		mockSvc.EXPECT().Summary(gomock.Any(), userID).Return(summary, nil)

		rr := httptest.NewRecorder()
		NewStatsHandler(mockSvc)(rr, newAuthedRequest(http.MethodGet, "/stats", nil, userID, ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp StatsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, summary, resp.Stats)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc := NewMockStatsSummarizer(ctrl)
		mockSvc.EXPECT().Summary(gomock.Any(), userID).Return(stats.Summary{}, errors.New("db down"))

		rr := httptest.NewRecorder()
		NewStatsHandler(mockSvc)(rr, newAuthedRequest(http.MethodGet, "/stats", nil, userID, ""))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestRootHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewRootHandler()(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success","message":"Mission tracker API is running"}`, rr.Body.String())
}
