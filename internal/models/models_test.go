package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ada Lovelace", "AL"},
		{"ada", "A"},
		{"  grace   brewster  hopper ", "GH"},
		{"élodie durand", "ÉD"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.name))
		})
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		xp         int
		level      int
		experience int
	}{
		{0, 1, 0},
		{50, 1, 50},
		{499, 1, 499},
		{500, 2, 0},
		{1250, 3, 250},
		{-10, 1, 0},
	}
	for _, tt := range tests {
		level, experience := Level(tt.xp)
		assert.Equal(t, tt.level, level, "xp %d", tt.xp)
		assert.Equal(t, tt.experience, experience, "xp %d", tt.xp)
	}
}

func TestProfile_Fill(t *testing.T) {
	p := Profile{Name: "Ada Lovelace", TotalXP: 750}
	p.Fill()
	assert.Equal(t, "AL", p.Initials)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 250, p.Experience)
}

func TestMissionPatch(t *testing.T) {
	title := "Read"
	other := "Run"
	reward := 50
	m := MissionDB{Title: "Read", RewardPoints: 50}

	assert.True(t, MissionPatch{}.IsEmpty())
	assert.False(t, MissionPatch{}.Changes(m))

	same := MissionPatch{Title: &title, RewardPoints: &reward}
	assert.False(t, same.IsEmpty())
	assert.False(t, same.Changes(m))

	assert.True(t, MissionPatch{Title: &other}.Changes(m))
}

func TestMissionUpdateRequest_Patch(t *testing.T) {
	title := "Read"
	reward := 10
	patch := MissionUpdateRequest{Title: &title, RewardPoints: &reward}.Patch()
	assert.Same(t, &title, patch.Title)
	assert.Same(t, &reward, patch.RewardPoints)
	assert.Nil(t, patch.Description)
	assert.Nil(t, patch.Category)
}

func TestMissionDB_IsCompleted(t *testing.T) {
	m := MissionDB{}
	assert.False(t, m.IsCompleted())
	now := time.Now()
	m.CompletedAt = &now
	assert.True(t, m.IsCompleted())
}

func TestUserDB_Public(t *testing.T) {
	u := UserDB{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", PasswordHash: "hash"}
	assert.Equal(t, PublicUser{UserID: u.ID, Name: "Ada", Email: "ada@example.com"}, u.Public())
}

func TestPatchesEmpty(t *testing.T) {
	name := "Ada"
	assert.True(t, UserPatch{}.IsEmpty())
	assert.False(t, UserPatch{Name: &name}.IsEmpty())
	assert.True(t, ProfileUpdateRequest{}.IsEmpty())
	assert.False(t, ProfileUpdateRequest{Name: &name}.IsEmpty())
}
