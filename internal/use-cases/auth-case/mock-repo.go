package auth_case

import (
	"context"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockAuthRepo struct {
	mock.Mock
}

func (m *MockAuthRepo) CountUsers(ctx context.Context, filter entity.UserCountFilter) (int, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockAuthRepo) SaveUser(ctx context.Context, user entity.UserEntity) (string, *app_errors.AppError) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockAuthRepo) FindByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*app_errors.AppError)
	}
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockAuthRepo) FindByUsername(ctx context.Context, username string) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*app_errors.AppError)
	}
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockAuthRepo) FindByID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*app_errors.AppError)
	}
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}
