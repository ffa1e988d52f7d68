package allocation_case

import (
	"context"
	"testing"
	"time"

	allocation_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/allocation-dto"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/stretchr/testify/assert"
)

// Test Happy path: der Override ersetzt die Basisstunden der Woche.
func TestSetWeekOverride_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAllocationRepo)
	resourceRepo := new(MockResourceRepo)
	projectRepo := new(MockProjectRepo)
	service := newTestAllocationService(repo, resourceRepo, projectRepo)

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	allocation := &entity.AllocationEntity{
		ID:             "alloc-1",
		ResourceID:     "res-1",
		AllocatedHours: 16,
		StartDate:      start,
		Status:         entity.AllocationActive,
	}
	resource := &entity.ResourceEntity{ID: "res-1", WeeklyCapacityHours: 40, IsActive: true}

	repo.On("GetAllocationByID", ctx, "alloc-1").Return(allocation, (*app_errors.AppError)(nil))
	repo.On("SetWeekOverride", ctx, "alloc-1", "2026-W36", 24.0).Return((*app_errors.AppError)(nil))
	resourceRepo.On("GetResourceByID", ctx, "res-1").Return(resource, (*app_errors.AppError)(nil))
	repo.On("ListActiveByResource", ctx, "res-1").Return([]entity.AllocationEntity{}, (*app_errors.AppError)(nil))

	resp, err := service.SetWeekOverride(ctx, "alloc-1", "2026-W36", &allocation_dto.SetWeekOverrideRequest{Hours: 24})

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, 24.0, resp.WeeklyAllocations["2026-W36"])
	// Basisstunden bleiben für alle anderen Wochen stehen.
	assert.Equal(t, 16.0, resp.AllocatedHours)
	assert.Empty(t, resp.Warnings)

	repo.AssertExpectations(t)
}

// Ein Override über der Schwelle warnt, kürzt aber nicht.
func TestSetWeekOverride_WarnsOverThreshold(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAllocationRepo)
	resourceRepo := new(MockResourceRepo)
	projectRepo := new(MockProjectRepo)
	service := newTestAllocationService(repo, resourceRepo, projectRepo)

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	allocation := &entity.AllocationEntity{
		ID:             "alloc-1",
		ResourceID:     "res-1",
		AllocatedHours: 16,
		StartDate:      start,
		Status:         entity.AllocationActive,
	}
	resource := &entity.ResourceEntity{ID: "res-1", WeeklyCapacityHours: 40, IsActive: true}

	// 44h auf 32h effektiv = 137,5 %.
	repo.On("GetAllocationByID", ctx, "alloc-1").Return(allocation, (*app_errors.AppError)(nil))
	repo.On("SetWeekOverride", ctx, "alloc-1", "2026-W36", 44.0).Return((*app_errors.AppError)(nil))
	resourceRepo.On("GetResourceByID", ctx, "res-1").Return(resource, (*app_errors.AppError)(nil))
	repo.On("ListActiveByResource", ctx, "res-1").Return([]entity.AllocationEntity{}, (*app_errors.AppError)(nil))

	resp, err := service.SetWeekOverride(ctx, "alloc-1", "2026-W36", &allocation_dto.SetWeekOverrideRequest{Hours: 44})

	assert.Nil(t, err)
	assert.Equal(t, 44.0, resp.WeeklyAllocations["2026-W36"])
	assert.Len(t, resp.Warnings, 1)
	assert.Equal(t, "2026-W36", resp.Warnings[0].Week)
	assert.InDelta(t, 137.5, resp.Warnings[0].UtilizationPct, 0.001)

	repo.AssertExpectations(t)
}

// Stornierte Allokationen nehmen keine Overrides mehr an.
func TestSetWeekOverride_RejectsInactiveAllocation(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAllocationRepo)
	resourceRepo := new(MockResourceRepo)
	projectRepo := new(MockProjectRepo)
	service := newTestAllocationService(repo, resourceRepo, projectRepo)

	allocation := &entity.AllocationEntity{
		ID:     "alloc-1",
		Status: entity.AllocationCancelled,
	}

	repo.On("GetAllocationByID", ctx, "alloc-1").Return(allocation, (*app_errors.AppError)(nil))

	resp, err := service.SetWeekOverride(ctx, "alloc-1", "2026-W36", &allocation_dto.SetWeekOverrideRequest{Hours: 8})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, "allocation.not_active", err.MessageKey)

	repo.AssertExpectations(t)
}
