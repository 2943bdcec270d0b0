package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/models"
)

//go:generate mockgen -source=missions.go -destination=missions_mock.go -package=handlers

// MissionCreator creates missions.
type MissionCreator interface {
	Create(ctx context.Context, userID uuid.UUID, req models.MissionCreateRequest) (*models.MissionDB, error)
}

// MissionLister lists the missions of a user.
type MissionLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.MissionDB, error)
}

// MissionGetter reads a single owned mission.
type MissionGetter interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*models.MissionDB, error)
}

// MissionUpdater applies partial mission updates.
type MissionUpdater interface {
	Update(ctx context.Context, userID, id uuid.UUID, req models.MissionUpdateRequest) (*models.MissionDB, error)
}

// MissionCompleter completes pending missions.
type MissionCompleter interface {
	Complete(ctx context.Context, userID, id uuid.UUID) (*models.MissionDB, error)
}

// MissionDeleter deletes missions.
type MissionDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) (*models.MissionDB, error)
}

// MissionSyncer replaces the caller's mission list.
type MissionSyncer interface {
	Sync(ctx context.Context, userID uuid.UUID, req models.MissionSyncRequest) ([]models.MissionDB, error)
}

// NewCreateMissionHandler returns an HTTP handler creating a mission.
// @Summary Create mission
// @Description Creates a pending mission owned by the caller. Category defaults to General.
// @Tags missions
// @Accept json
// @Produce json
// @Param missionCreateRequest body models.MissionCreateRequest true "Mission"
// @Success 201 {object} models.MissionResponse
// @Failure 400 {object} models.ErrorResponse "Missing fields or invalid request"
// @Failure 401 {object} models.ErrorResponse "Missing token"
// @Failure 403 {object} models.ErrorResponse "Invalid or expired token"
// @Router /missions [post]
// @Security BearerAuth
func NewCreateMissionHandler(svc MissionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req models.MissionCreateRequest
		if !decodeBody(w, r, &req) {
			return
		}

		m, err := svc.Create(r.Context(), uid, req)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.MissionResponse{
			Status:  models.StatusSuccess,
			Message: "Mission created successfully",
			Mission: *m,
		})
	}
}

// NewListMissionsHandler returns an HTTP handler listing the caller's missions, newest first.
// @Summary List missions
// @Tags missions
// @Produce json
// @Success 200 {object} models.MissionListResponse
// @Failure 401 {object} models.ErrorResponse "Missing token"
// @Failure 403 {object} models.ErrorResponse "Invalid or expired token"
// @Router /missions [get]
// @Security BearerAuth
func NewListMissionsHandler(svc MissionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		missions, err := svc.List(r.Context(), uid)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		if missions == nil {
			missions = []models.MissionDB{}
		}

		writeJSON(w, http.StatusOK, models.MissionListResponse{
			Status:   models.StatusSuccess,
			Missions: missions,
		})
	}
}

// NewGetMissionHandler returns an HTTP handler reading one mission.
// @Summary Get mission
// @Tags missions
// @Produce json
// @Param id path string true "Mission ID"
// @Success 200 {object} models.MissionResponse
// @Failure 404 {object} models.ErrorResponse "Mission not found"
// @Router /missions/{id} [get]
// @Security BearerAuth
func NewGetMissionHandler(svc MissionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		id, ok := missionID(w, r)
		if !ok {
			return
		}

		m, err := svc.Get(r.Context(), uid, id)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MissionResponse{
			Status:  models.StatusSuccess,
			Mission: *m,
		})
	}
}

// NewUpdateMissionHandler returns an HTTP handler for partial mission updates.
// @Summary Update mission
// @Description Updates title, description, category and/or reward points. Completion is not editable here.
// @Tags missions
// @Accept json
// @Produce json
// @Param id path string true "Mission ID"
// @Param missionUpdateRequest body models.MissionUpdateRequest true "Fields to update"
// @Success 200 {object} models.MissionResponse
// @Failure 400 {object} models.ErrorResponse "No fields or invalid request"
// @Failure 404 {object} models.ErrorResponse "Mission not found"
// @Router /missions/{id} [put]
// @Security BearerAuth
func NewUpdateMissionHandler(svc MissionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		id, ok := missionID(w, r)
		if !ok {
			return
		}

		var req models.MissionUpdateRequest
		if !decodeBody(w, r, &req) {
			return
		}

		m, err := svc.Update(r.Context(), uid, id, req)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MissionResponse{
			Status:  models.StatusSuccess,
			Message: "Mission updated successfully",
			Mission: *m,
		})
	}
}

// NewCompleteMissionHandler returns an HTTP handler completing a mission.
// @Summary Complete mission
// @Description Marks a pending mission completed and credits its reward points. A mission completes at most once.
// @Tags missions
// @Produce json
// @Param id path string true "Mission ID"
// @Success 200 {object} models.MissionCompleteResponse
// @Failure 400 {object} models.ErrorResponse "Mission already completed"
// @Failure 404 {object} models.ErrorResponse "Mission not found"
// @Router /missions/{id}/complete [post]
// @Security BearerAuth
func NewCompleteMissionHandler(svc MissionCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		id, ok := missionID(w, r)
		if !ok {
			return
		}

		m, err := svc.Complete(r.Context(), uid, id)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MissionCompleteResponse{
			Status:   models.StatusSuccess,
			Message:  fmt.Sprintf("Mission completed! You earned %d XP.", m.RewardPoints),
			Mission:  *m,
			XPEarned: m.RewardPoints,
		})
	}
}

// NewDeleteMissionHandler returns an HTTP handler deleting a mission.
// @Summary Delete mission
// @Description Deletes the mission. Earned XP is kept.
// @Tags missions
// @Produce json
// @Param id path string true "Mission ID"
// @Success 200 {object} models.MissionResponse
// @Failure 404 {object} models.ErrorResponse "Mission not found"
// @Router /missions/{id} [delete]
// @Security BearerAuth
func NewDeleteMissionHandler(svc MissionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		id, ok := missionID(w, r)
		if !ok {
			return
		}

		m, err := svc.Delete(r.Context(), uid, id)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MissionResponse{
			Status:  models.StatusSuccess,
			Message: "Mission deleted successfully",
			Mission: *m,
		})
	}
}

// NewSyncMissionsHandler returns an HTTP handler replacing the caller's mission list.
// @Summary Sync missions
// @Description Reconciles the stored missions with the submitted list. Unknown ids are created, listed ids are updated, absent ones are deleted. Completion only moves forward.
// @Tags missions
// @Accept json
// @Produce json
// @Param missionSyncRequest body models.MissionSyncRequest true "Desired mission list"
// @Success 200 {object} models.MissionListResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "Mission id already in use"
// @Router /missions [put]
// @Security BearerAuth
func NewSyncMissionsHandler(svc MissionSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req models.MissionSyncRequest
		if !decodeBody(w, r, &req) {
			return
		}

		missions, err := svc.Sync(r.Context(), uid, req)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		if missions == nil {
			missions = []models.MissionDB{}
		}

		writeJSON(w, http.StatusOK, models.MissionListResponse{
			Status:   models.StatusSuccess,
			Missions: missions,
		})
	}
}
