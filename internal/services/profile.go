package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/logger"
	"github.com/sbilibin2017/gw-missions/internal/models"
	"github.com/sbilibin2017/gw-missions/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=services

// ProfileReader reads users and their profiles.
type ProfileReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

// ProfileWriter updates and deletes users.
type ProfileWriter interface {
	Update(ctx context.Context, id uuid.UUID, patch models.UserPatch) (*models.UserDB, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// ProfileService manages the account of the authenticated user.
type ProfileService struct {
	reader      ProfileReader
	writer      ProfileWriter
	cache       StatsCache
	kafkaWriter KafkaWriter
}

// NewProfileService creates a new ProfileService.
func NewProfileService(reader ProfileReader, writer ProfileWriter, cache StatsCache, kafkaWriter KafkaWriter) *ProfileService {
	return &ProfileService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// Get returns the profile of userID.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.reader.GetProfile(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get profile", "user_id", userID, "error", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}
	return profile, nil
}

// Update applies the fields present in req. A new password is re-hashed.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, req models.ProfileUpdateRequest) (*models.UserDB, error) {
	log := logger.FromContext(ctx)

	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		req.Email = &email
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	patch := models.UserPatch{Name: req.Name, Email: req.Email}

	if req.Email != nil {
		other, err := s.reader.GetByEmail(ctx, *req.Email)
		if err != nil {
			log.Errorw("failed to check email", "user_id", userID, "error", err)
			return nil, err
		}
		if other != nil && other.ID != userID {
			return nil, ErrEmailTaken
		}
	}

	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Errorw("failed to hash password", "error", err)
			return nil, err
		}
		hash := string(hashed)
		patch.PasswordHash = &hash
	}

	user, err := s.writer.Update(ctx, userID, patch)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		log.Errorw("failed to update user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	log.Infow("profile updated", "user_id", userID, "password_changed", req.Password != nil)
	return user, nil
}

// Delete removes the account of userID with everything it owns.
func (s *ProfileService) Delete(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := s.writer.Delete(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	invalidateStats(ctx, s.cache, userID)
	publishEvent(ctx, s.kafkaWriter, newEvent(models.OperationUserDeleted, userID))

	logger.FromContext(ctx).Infow("user deleted", "user_id", userID)
	return user, nil
}
