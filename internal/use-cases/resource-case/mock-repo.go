package resource_case

import (
	"context"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockResourceRepo struct {
	mock.Mock
}

func (m *MockResourceRepo) InsertResource(ctx context.Context, model *entity.ResourceEntity) (*entity.ResourceEntity, *app_errors.AppError) {
	args := m.Called(ctx, model)
	return args.Get(0).(*entity.ResourceEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockResourceRepo) ListResources(ctx context.Context, filter entity.ResourceListFilter) ([]entity.ResourceEntity, int, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entity.ResourceEntity), args.Int(1), args.Get(2).(*app_errors.AppError)
}

func (m *MockResourceRepo) GetResourceByID(ctx context.Context, resourceID string) (*entity.ResourceEntity, *app_errors.AppError) {
	args := m.Called(ctx, resourceID)
	return args.Get(0).(*entity.ResourceEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockResourceRepo) UpdateResource(ctx context.Context, model *entity.ResourceEntity) *app_errors.AppError {
	args := m.Called(ctx, model)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockResourceRepo) HasAllocations(ctx context.Context, resourceID string) (bool, *app_errors.AppError) {
	args := m.Called(ctx, resourceID)
	return args.Bool(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockResourceRepo) DeactivateResource(ctx context.Context, resourceID string) *app_errors.AppError {
	args := m.Called(ctx, resourceID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockResourceRepo) DeleteResource(ctx context.Context, resourceID string) *app_errors.AppError {
	args := m.Called(ctx, resourceID)
	return args.Get(0).(*app_errors.AppError)
}
