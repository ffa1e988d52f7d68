package timeentry_case

import (
	"context"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockTimeEntryRepo struct {
	mock.Mock
}

func (m *MockTimeEntryRepo) UpsertTimeEntry(ctx context.Context, model *entity.TimeEntryEntity) (*entity.TimeEntryEntity, *app_errors.AppError) {
	args := m.Called(ctx, model)
	return args.Get(0).(*entity.TimeEntryEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTimeEntryRepo) ListByAllocation(ctx context.Context, allocationID string) ([]entity.TimeEntryEntity, *app_errors.AppError) {
	args := m.Called(ctx, allocationID)
	return args.Get(0).([]entity.TimeEntryEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTimeEntryRepo) ListByResourceRange(ctx context.Context, resourceID string, from, to time.Time) ([]entity.TimeEntryEntity, *app_errors.AppError) {
	args := m.Called(ctx, resourceID, from, to)
	return args.Get(0).([]entity.TimeEntryEntity), args.Get(1).(*app_errors.AppError)
}

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
