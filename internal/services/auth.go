package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/logger"
	"github.com/sbilibin2017/gw-missions/internal/models"
	"github.com/sbilibin2017/gw-missions/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// StatsCreator creates the empty stats aggregate of a new user.
type StatsCreator interface {
	Create(ctx context.Context, userID uuid.UUID) error
}

// Transactor runs fn inside a database transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	statsRepo StatsCreator
	tx        Transactor
	jwt       JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, statsRepo StatsCreator, tx Transactor, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader:    reader,
		writer:    writer,
		statsRepo: statsRepo,
		tx:        tx,
		jwt:       jwt,
	}
}

// Register creates the user together with its stats aggregate and returns a token for it.
func (svc *AuthService) Register(ctx context.Context, req models.RegisterRequest) (string, *models.UserDB, error) {
	log := logger.FromContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validateStruct(req); err != nil {
		return "", nil, err
	}

	existing, err := svc.reader.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return "", nil, err
	}
	if existing != nil {
		log.Infow("email already registered", "email", req.Email)
		return "", nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}

	user := &models.UserDB{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}
	err = svc.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := svc.writer.Save(ctx, user); err != nil {
			return err
		}
		return svc.statsRepo.Create(ctx, user.ID)
	})
	if errors.Is(err, repositories.ErrUniqueViolation) {
		// lost a race against a concurrent registration
		return "", nil, ErrEmailTaken
	}
	if err != nil {
		log.Errorw("failed to save user", "err", err)
		return "", nil, err
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	log.Infow("user registered", "user_id", user.ID)
	return token, user, nil
}

// Login authenticates a user and returns a JWT token.
// Unknown emails and wrong passwords fail the same way.
func (svc *AuthService) Login(ctx context.Context, req models.LoginRequest) (string, *models.UserDB, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.TrimSpace(req.Email)
	if err := validateStruct(req); err != nil {
		return "", nil, err
	}

	user, err := svc.reader.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		log.Infow("login for unknown email", "email", req.Email)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Infow("invalid credentials", "user_id", user.ID)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}
