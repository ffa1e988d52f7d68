package project_case

import (
	"context"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/abstraction/tx"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) InsertProject(ctx context.Context, model *entity.ProjectEntity) (*entity.ProjectEntity, *app_errors.AppError) {
	args := m.Called(ctx, model)
	return args.Get(0).(*entity.ProjectEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) ListProjects(ctx context.Context, filter entity.ProjectListFilter) ([]entity.ProjectEntity, int, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entity.ProjectEntity), args.Int(1), args.Get(2).(*app_errors.AppError)
}

func (m *MockProjectRepo) GetProjectByID(ctx context.Context, projectID string) (*entity.ProjectEntity, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(*entity.ProjectEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) GetProjectSums(ctx context.Context, projectID string) (float64, float64, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(float64), args.Get(1).(float64), args.Get(2).(*app_errors.AppError)
}

func (m *MockProjectRepo) UpdateProject(ctx context.Context, model *entity.ProjectEntity) *app_errors.AppError {
	args := m.Called(ctx, model)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockProjectRepo) CancelProject(ctx context.Context, t tx.Tx, projectID string) *app_errors.AppError {
	args := m.Called(ctx, t, projectID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockProjectRepo) CancelActiveAllocations(ctx context.Context, t tx.Tx, projectID string) (int, *app_errors.AppError) {
	args := m.Called(ctx, t, projectID)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) CompleteProjectsPastEnd(ctx context.Context, cutoff time.Time) (int, *app_errors.AppError) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}
