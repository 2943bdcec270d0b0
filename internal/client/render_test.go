package client

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/models"
	"github.com/sbilibin2017/gw-missions/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestRenderMissions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderMissions(&buf, nil))
	assert.Equal(t, "No missions found\n", buf.String())

	buf.Reset()
	done := time.Now()
	missions := []models.MissionDB{
		{ID: uuid.New(), Title: "Read", Category: "Study", RewardPoints: 50, CompletedAt: &done},
		{ID: uuid.New(), Title: "Run", Category: "Health", RewardPoints: 30},
	}
	require.NoError(t, RenderMissions(&buf, missions))

	out := buf.String()
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "pending")
	assert.Contains(t, out, "+50")
	assert.Contains(t, out, missions[1].ID.String())
}

func TestRenderStats(t *testing.T) {
	var buf bytes.Buffer
	s := stats.Summary{TotalMissions: 2, CompletedMissions: 1, CompletionRate: 50, Sequence: 12, TotalPoints: 30, Level: 1, Experience: 30}
	profile := &models.Profile{Name: "Ada Lovelace", Email: "ada@example.com", Initials: "AL"}

	require.NoError(t, RenderStats(&buf, s, profile))

	out := buf.String()
	assert.Contains(t, out, "[AL] Ada Lovelace <ada@example.com>")
	assert.Contains(t, out, "1/2 completed")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "30/500 XP")
}

func TestRenderNotices(t *testing.T) {
	var buf bytes.Buffer
	RenderNotices(&buf, []Notice{
		{Kind: NoticeInfo, Message: "Mission added"},
		{Kind: NoticeError, Message: "Server unreachable"},
	})
	assert.Equal(t, "✓ Mission added\n✗ Server unreachable\n", buf.String())
}
