package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-missions/internal/models"
	"github.com/sbilibin2017/gw-missions/internal/repositories"
	"github.com/sbilibin2017/gw-missions/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// runInTx makes a mock Transactor execute the unit of work it is handed.
func runInTx(tx *services.MockTransactor) *gomock.Call {
	return tx.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockStats := services.NewMockStatsCreator(ctrl)
	mockTx := services.NewMockTransactor(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockStats, mockTx, mockJWT)
	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		var saved *models.UserDB
		mockReader.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
		runInTx(mockTx)
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, user *models.UserDB) error {
				user.ID = uuid.New()
				saved = user
				return nil
			})
		mockStats.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, userID uuid.UUID) error {
				assert.Equal(t, saved.ID, userID)
				return nil
			})
		mockJWT.EXPECT().Generate(gomock.Any(), gomock.Any(), "ada@example.com").Return("token123", nil)

		token, user, err := svc.Register(ctx, models.RegisterRequest{Name: " Ada Lovelace ", Email: "ada@example.com", Password: "pass123"})
		require.NoError(t, err)
		assert.Equal(t, "token123", token)
		assert.Equal(t, "Ada Lovelace", user.Name)
		assert.NotEqual(t, "pass123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")))
	})

	t.Run("missing fields", func(t *testing.T) {
		_, _, err := svc.Register(ctx, models.RegisterRequest{Email: "ada@example.com", Password: "pass123"})
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.Contains(t, err.Error(), "name is required")

		_, _, err = svc.Register(ctx, models.RegisterRequest{Name: "Ada", Email: "ada@example.com"})
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, _, err := svc.Register(ctx, models.RegisterRequest{Name: "Ada", Email: "not-an-email", Password: "pass123"})
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("fields longer than their columns", func(t *testing.T) {
		_, _, err := svc.Register(ctx, models.RegisterRequest{Name: strings.Repeat("a", 101), Email: "ada@example.com", Password: "pass123"})
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.Contains(t, err.Error(), "name must be at most 100 characters long")

		_, _, err = svc.Register(ctx, models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: strings.Repeat("p", 73)})
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.Contains(t, err.Error(), "password must be at most 72 characters long")
	})

	t.Run("email already registered", func(t *testing.T) {
		mockReader.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").Return(&models.UserDB{ID: uuid.New()}, nil)

		_, _, err := svc.Register(ctx, models.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "pass123"})
		assert.ErrorIs(t, err, services.ErrEmailTaken)
	})

	t.Run("unique violation on insert", func(t *testing.T) {
		mockReader.EXPECT().GetByEmail(gomock.Any(), "carol@example.com").Return(nil, nil)
		runInTx(mockTx)
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).
			Return(errors.Join(repositories.ErrUniqueViolation, errors.New("23505")))

		_, _, err := svc.Register(ctx, models.RegisterRequest{Name: "Carol", Email: "carol@example.com", Password: "pass123"})
		assert.ErrorIs(t, err, services.ErrEmailTaken)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().GetByEmail(gomock.Any(), "eve@example.com").Return(nil, errors.New("db error"))

		_, _, err := svc.Register(ctx, models.RegisterRequest{Name: "Eve", Email: "eve@example.com", Password: "pass123"})
		assert.EqualError(t, err, "db error")
	})

	t.Run("stats row error rolls the registration back", func(t *testing.T) {
		mockReader.EXPECT().GetByEmail(gomock.Any(), "dan@example.com").Return(nil, nil)
		runInTx(mockTx)
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		mockStats.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("stats error"))

		_, _, err := svc.Register(ctx, models.RegisterRequest{Name: "Dan", Email: "dan@example.com", Password: "pass123"})
		assert.EqualError(t, err, "stats error")
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, nil, nil, nil, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &models.UserDB{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", PasswordHash: string(hashed)}

	tests := []struct {
		name      string
		email     string
		password  string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		wantToken string
	}{
		{
			name:      "successful login",
			email:     "ada@example.com",
			password:  password,
			user:      user,
			wantToken: "token123",
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: password,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "ada@example.com",
			password: "wrong",
			user:     user,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "ada@example.com",
			password:  password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "jwt error",
			email:    "ada@example.com",
			password: password,
			user:     user,
			jwtErr:   errors.New("sign error"),
			wantErr:  errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(tt.user, tt.readerErr)
			if tt.user != nil && tt.password == password {
				token := tt.wantToken
				mockJWT.EXPECT().Generate(gomock.Any(), tt.user.ID, tt.user.Email).Return(token, tt.jwtErr)
			}

			token, got, err := svc.Login(context.Background(), models.LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.user.ID, got.ID)
		})
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := services.NewAuthService(nil, nil, nil, nil, nil)

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Email: "ada@example.com"})
	assert.ErrorIs(t, err, services.ErrValidation)
}
