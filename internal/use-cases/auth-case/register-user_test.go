package auth_case

import (
	"context"
	"testing"

	auth_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/auth-dto"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// deadRedis liefert einen Client ohne erreichbaren Server. Das Session-Tracking
// ignoriert Redis-Fehler, Registrierung und Login funktionieren daher trotzdem.
func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
}

func newTestAuthService(t *testing.T, repo *MockAuthRepo) *AuthService {
	t.Helper()

	paseto, err := utils.NewPasetoMaker(utils.GenerateSymmetricKey())
	if err != nil {
		t.Fatalf("Paseto-Maker konnte nicht erstellt werden: %v", err)
	}

	return &AuthService{
		redis:  deadRedis(),
		paseto: paseto,
		repo:   repo,
	}
}

func TestRegisterUser_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAuthRepo)
	service := newTestAuthService(t, repo)

	repo.On("CountUsers", ctx, mock.AnythingOfType("entity.UserCountFilter")).Return(0, (*app_errors.AppError)(nil))
	repo.On("SaveUser", ctx, mock.AnythingOfType("entity.UserEntity")).Return("user-1", (*app_errors.AppError)(nil))

	resp, err := service.RegisterUser(ctx, auth_dto.RegisterUserRequest{
		Email:    "anna.schmidt@example.com",
		Username: "aschmidt",
		Name:     "Anna Schmidt",
		Password: "geheimnis123",
	})

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "user-1", resp.UserID)
	assert.NotEmpty(t, resp.Token)

	repo.AssertExpectations(t)
}

// E-Mail oder Benutzername bereits vergeben → 409, kein Insert.
func TestRegisterUser_Conflict(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAuthRepo)
	service := newTestAuthService(t, repo)

	repo.On("CountUsers", ctx, mock.AnythingOfType("entity.UserCountFilter")).Return(1, (*app_errors.AppError)(nil))

	resp, err := service.RegisterUser(ctx, auth_dto.RegisterUserRequest{
		Email:    "anna.schmidt@example.com",
		Username: "aschmidt",
		Name:     "Anna Schmidt",
		Password: "geheimnis123",
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusConflict, err.Code)
	assert.Equal(t, "conflict", err.MessageKey)

	repo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
}
