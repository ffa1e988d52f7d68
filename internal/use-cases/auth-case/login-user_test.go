package auth_case

import (
	"context"
	"testing"

	auth_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/auth-dto"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func hashedPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.GenerateHash(password)
	if err != nil {
		t.Fatalf("Passwort konnte nicht gehasht werden: %v", err)
	}
	return hash
}

// Identifier mit @ wird als E-Mail aufgelöst.
func TestLoginUser_ByEmail_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAuthRepo)
	service := newTestAuthService(t, repo)

	user := &entity.UserEntity{
		ID:           "user-1",
		Email:        "anna.schmidt@example.com",
		Username:     "aschmidt",
		PasswordHash: hashedPassword(t, "geheimnis123"),
		IsActive:     true,
	}
	repo.On("FindByEmail", ctx, "anna.schmidt@example.com").Return(user, (*app_errors.AppError)(nil))

	resp, err := service.LoginUser(ctx, auth_dto.LoginUserRequest{
		Identifier: "anna.schmidt@example.com",
		Password:   "geheimnis123",
	}, auth_dto.LoginMetadata{Device: "Desktop", UserAgent: "go-test", IP: "127.0.0.1"})

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "aschmidt", resp.Username)
	assert.NotEmpty(t, resp.Token)

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "FindByUsername", ctx, "anna.schmidt@example.com")
}

// Identifier ohne @ wird als Benutzername aufgelöst.
func TestLoginUser_ByUsername_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAuthRepo)
	service := newTestAuthService(t, repo)

	user := &entity.UserEntity{
		ID:           "user-1",
		Email:        "anna.schmidt@example.com",
		Username:     "aschmidt",
		PasswordHash: hashedPassword(t, "geheimnis123"),
		IsActive:     true,
	}
	repo.On("FindByUsername", ctx, "aschmidt").Return(user, (*app_errors.AppError)(nil))

	resp, err := service.LoginUser(ctx, auth_dto.LoginUserRequest{
		Identifier: "aschmidt",
		Password:   "geheimnis123",
	}, auth_dto.LoginMetadata{})

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "user-1", resp.UserID)

	repo.AssertExpectations(t)
}

// Falsches Passwort → dieselbe Antwort wie bei unbekanntem Konto.
func TestLoginUser_WrongPassword(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAuthRepo)
	service := newTestAuthService(t, repo)

	user := &entity.UserEntity{
		ID:           "user-1",
		Email:        "anna.schmidt@example.com",
		Username:     "aschmidt",
		PasswordHash: hashedPassword(t, "geheimnis123"),
		IsActive:     true,
	}
	repo.On("FindByEmail", ctx, "anna.schmidt@example.com").Return(user, (*app_errors.AppError)(nil))

	resp, err := service.LoginUser(ctx, auth_dto.LoginUserRequest{
		Identifier: "anna.schmidt@example.com",
		Password:   "falschesPasswort",
	}, auth_dto.LoginMetadata{})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, err.Code)
	assert.Equal(t, "auth.unauthorized", err.MessageKey)
}

// Unbekanntes Konto → ebenfalls "auth.unauthorized", keine Existenz-Auskunft.
func TestLoginUser_UnknownAccount(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAuthRepo)
	service := newTestAuthService(t, repo)

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "user_not_found", nil)
	repo.On("FindByUsername", ctx, "niemand").Return(nil, notFound)

	resp, err := service.LoginUser(ctx, auth_dto.LoginUserRequest{
		Identifier: "niemand",
		Password:   "geheimnis123",
	}, auth_dto.LoginMetadata{})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, err.Code)
	assert.Equal(t, "auth.unauthorized", err.MessageKey)
}

// Deaktivierte Konten dürfen sich nicht anmelden.
func TestLoginUser_InactiveAccount(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAuthRepo)
	service := newTestAuthService(t, repo)

	user := &entity.UserEntity{
		ID:           "user-1",
		Email:        "anna.schmidt@example.com",
		Username:     "aschmidt",
		PasswordHash: hashedPassword(t, "geheimnis123"),
		IsActive:     false,
	}
	repo.On("FindByEmail", ctx, "anna.schmidt@example.com").Return(user, (*app_errors.AppError)(nil))

	resp, err := service.LoginUser(ctx, auth_dto.LoginUserRequest{
		Identifier: "anna.schmidt@example.com",
		Password:   "geheimnis123",
	}, auth_dto.LoginMetadata{})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, err.Code)
	assert.Equal(t, "auth.inactive", err.MessageKey)
}
