package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/mock"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:     "test-sign-key",
	TokenIssuer:      "fin-tracker-test",
	TokenDuration:    7 * 24 * time.Hour,
	PasswordHashCost: bcrypt.MinCost,
}

func newTestAuthService(repo store.UserRepository) *authService {
	return NewAuthService(repo, testAppConfig, logger.Nop()).(*authService)
}

func userCtx(userID int64) context.Context {
	return utils.WithUserID(context.Background(), userID)
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	svc := newTestAuthService(store.NewMemoryUserRepository())

	user, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "  Ann  ",
		Email:    "ann@example.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, utils.VerifyPassword("secret1", user.PasswordHash))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(store.NewMemoryUserRepository())
	req := models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Register_InvalidData_SkipsRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := newTestAuthService(repo)

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"short name", models.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret1"}},
		{"bad email", models.RegisterRequest{Name: "Ann", Email: "not-an-email", Password: "secret1"}},
		{"short password", models.RegisterRequest{Name: "Ann", Email: "a@example.com", Password: "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Register_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	dbErr := errors.New("db down")
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	svc := newTestAuthService(repo)
	_, err := svc.Register(context.Background(), models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, dbErr)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	repo := store.NewMemoryUserRepository()
	svc := newTestAuthService(repo)
	registered, err := svc.Register(context.Background(), models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		user, err := svc.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, registered.UserID, user.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "secret2"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), models.Credentials{Email: "bob@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), models.Credentials{Email: "ann@example.com"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	dbErr := errors.New("db down")
	repo.EXPECT().FindUserByEmail(gomock.Any(), "ann@example.com").Return(models.User{}, dbErr)

	svc := newTestAuthService(repo)
	_, err := svc.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestAuthService_Token_RoundTrip(t *testing.T) {
	svc := newTestAuthService(store.NewMemoryUserRepository())

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(context.Background(), token.String())
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, testAppConfig.TokenIssuer, parsed.Issuer)
}

func TestAuthService_Token_Lifetime(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestAuthService(store.NewMemoryUserRepository())
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 7})
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(7*24*time.Hour - time.Second) }
	parsed, err := svc.ParseToken(context.Background(), token.String())
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)

	svc.now = func() time.Time { return issuedAt.Add(7 * 24 * time.Hour) }
	_, err = svc.ParseToken(context.Background(), token.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	svc := newTestAuthService(store.NewMemoryUserRepository())

	otherIssuer := NewAuthService(nil, config.App{
		TokenSignKey:  testAppConfig.TokenSignKey,
		TokenIssuer:   "someone-else",
		TokenDuration: time.Hour,
	}, logger.Nop())
	foreign, err := otherIssuer.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	otherKey := NewAuthService(nil, config.App{
		TokenSignKey:  "another-key",
		TokenIssuer:   testAppConfig.TokenIssuer,
		TokenDuration: time.Hour,
	}, logger.Nop())
	forged, err := otherKey.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"wrong issuer", foreign.String()},
		{"wrong key", forged.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_CreateToken_MisconfiguredKey(t *testing.T) {
	svc := NewAuthService(nil, config.App{TokenIssuer: "x", TokenDuration: time.Hour}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
