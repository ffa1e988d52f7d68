package allocation_case

import (
	"context"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/abstraction/tx"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockAllocationRepo struct {
	mock.Mock
}

func (m *MockAllocationRepo) InsertAllocation(ctx context.Context, model *entity.AllocationEntity) (*entity.AllocationEntity, *app_errors.AppError) {
	args := m.Called(ctx, model)
	return args.Get(0).(*entity.AllocationEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockAllocationRepo) GetAllocationByID(ctx context.Context, allocationID string) (*entity.AllocationEntity, *app_errors.AppError) {
	args := m.Called(ctx, allocationID)
	return args.Get(0).(*entity.AllocationEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockAllocationRepo) ListByResource(ctx context.Context, resourceID string) ([]entity.AllocationEntity, *app_errors.AppError) {
	args := m.Called(ctx, resourceID)
	return args.Get(0).([]entity.AllocationEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockAllocationRepo) ListByProject(ctx context.Context, projectID string) ([]entity.AllocationEntity, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]entity.AllocationEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockAllocationRepo) ListActiveByResource(ctx context.Context, resourceID string) ([]entity.AllocationEntity, *app_errors.AppError) {
	args := m.Called(ctx, resourceID)
	return args.Get(0).([]entity.AllocationEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockAllocationRepo) UpdateAllocation(ctx context.Context, model *entity.AllocationEntity) *app_errors.AppError {
	args := m.Called(ctx, model)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockAllocationRepo) SetWeekOverride(ctx context.Context, allocationID, isoWeek string, hours float64) *app_errors.AppError {
	args := m.Called(ctx, allocationID, isoWeek, hours)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockAllocationRepo) CancelAllocation(ctx context.Context, allocationID string) *app_errors.AppError {
	args := m.Called(ctx, allocationID)
	return args.Get(0).(*app_errors.AppError)
}

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
