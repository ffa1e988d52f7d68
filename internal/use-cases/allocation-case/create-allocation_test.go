package allocation_case

import (
	"context"
	"testing"
	"time"

	allocation_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/allocation-dto"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestAllocationService(repo *MockAllocationRepo, resourceRepo *MockResourceRepo, projectRepo *MockProjectRepo) *AllocationService {
	return &AllocationService{
		repo:              repo,
		resourceRepo:      resourceRepo,
		projectRepo:       projectRepo,
		nonProjectHours:   8,
		clampThresholdPct: 120,
	}
}

// Test Happy path: unter der Schwelle gibt es keine Warnung.
func TestCreateAllocation_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAllocationRepo)
	resourceRepo := new(MockResourceRepo)
	projectRepo := new(MockProjectRepo)
	service := newTestAllocationService(repo, resourceRepo, projectRepo)

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 13)

	resource := &entity.ResourceEntity{ID: "res-1", WeeklyCapacityHours: 40, IsActive: true}
	project := &entity.ProjectEntity{ID: "proj-1", Status: entity.ProjectActive}

	resourceRepo.On("GetResourceByID", ctx, "res-1").Return(resource, (*app_errors.AppError)(nil))
	projectRepo.On("GetProjectByID", ctx, "proj-1").Return(project, (*app_errors.AppError)(nil))
	repo.On("ListActiveByResource", ctx, "res-1").Return([]entity.AllocationEntity{}, (*app_errors.AppError)(nil))
	repo.On("InsertAllocation", ctx, mock.AnythingOfType("*entity.AllocationEntity")).Return(&entity.AllocationEntity{
		ID:             "alloc-1",
		ResourceID:     "res-1",
		ProjectID:      "proj-1",
		AllocatedHours: 16,
		StartDate:      start,
		EndDate:        &end,
		Role:           "Developer",
		Status:         entity.AllocationActive,
	}, (*app_errors.AppError)(nil))

	resp, err := service.CreateAllocation(ctx, &allocation_dto.CreateAllocationRequest{
		ResourceID:     "res-1",
		ProjectID:      "proj-1",
		AllocatedHours: 16,
		StartDate:      start,
		EndDate:        &end,
		Role:           "Developer",
	})

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "Active", resp.Status)
	assert.Empty(t, resp.Warnings)

	repo.AssertExpectations(t)
	resourceRepo.AssertExpectations(t)
	projectRepo.AssertExpectations(t)
}

// Über der Schwelle wird gewarnt, die Stunden bleiben unangetastet.
func TestCreateAllocation_WarnsOverThresholdWithoutClamping(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAllocationRepo)
	resourceRepo := new(MockResourceRepo)
	projectRepo := new(MockProjectRepo)
	service := newTestAllocationService(repo, resourceRepo, projectRepo)

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)

	resource := &entity.ResourceEntity{ID: "res-1", WeeklyCapacityHours: 40, IsActive: true}
	project := &entity.ProjectEntity{ID: "proj-1", Status: entity.ProjectActive}

	// Bestand: 24h. Kandidat: 16h → 40h auf 32h effektiv = 125 % ≥ 120 %.
	existing := []entity.AllocationEntity{
		{ID: "alloc-0", ResourceID: "res-1", AllocatedHours: 24, StartDate: start, Status: entity.AllocationActive},
	}

	resourceRepo.On("GetResourceByID", ctx, "res-1").Return(resource, (*app_errors.AppError)(nil))
	projectRepo.On("GetProjectByID", ctx, "proj-1").Return(project, (*app_errors.AppError)(nil))
	repo.On("ListActiveByResource", ctx, "res-1").Return(existing, (*app_errors.AppError)(nil))
	repo.On("InsertAllocation", ctx, mock.AnythingOfType("*entity.AllocationEntity")).Return(&entity.AllocationEntity{
		ID:             "alloc-1",
		ResourceID:     "res-1",
		ProjectID:      "proj-1",
		AllocatedHours: 16,
		StartDate:      start,
		EndDate:        &end,
		Status:         entity.AllocationActive,
	}, (*app_errors.AppError)(nil))

	resp, err := service.CreateAllocation(ctx, &allocation_dto.CreateAllocationRequest{
		ResourceID:     "res-1",
		ProjectID:      "proj-1",
		AllocatedHours: 16,
		StartDate:      start,
		EndDate:        &end,
		Role:           "Developer",
	})

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	// Die angefragten Stunden wurden NICHT gekürzt.
	assert.Equal(t, 16.0, resp.AllocatedHours)
	assert.Len(t, resp.Warnings, 1)
	assert.Equal(t, "2026-W35", resp.Warnings[0].Week)
	assert.InDelta(t, 125.0, resp.Warnings[0].UtilizationPct, 0.001)
	assert.Equal(t, 120.0, resp.Warnings[0].Threshold)

	repo.AssertExpectations(t)
}

func TestCreateAllocation_RejectsInactiveResource(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAllocationRepo)
	resourceRepo := new(MockResourceRepo)
	projectRepo := new(MockProjectRepo)
	service := newTestAllocationService(repo, resourceRepo, projectRepo)

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	resource := &entity.ResourceEntity{ID: "res-1", WeeklyCapacityHours: 40, IsActive: false}

	resourceRepo.On("GetResourceByID", ctx, "res-1").Return(resource, (*app_errors.AppError)(nil))

	resp, err := service.CreateAllocation(ctx, &allocation_dto.CreateAllocationRequest{
		ResourceID:     "res-1",
		ProjectID:      "proj-1",
		AllocatedHours: 16,
		StartDate:      start,
		Role:           "Developer",
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, "allocation.resource_inactive", err.MessageKey)

	repo.AssertNotCalled(t, "InsertAllocation", mock.Anything, mock.Anything)
}

func TestCreateAllocation_RejectsClosedProject(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAllocationRepo)
	resourceRepo := new(MockResourceRepo)
	projectRepo := new(MockProjectRepo)
	service := newTestAllocationService(repo, resourceRepo, projectRepo)

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	resource := &entity.ResourceEntity{ID: "res-1", WeeklyCapacityHours: 40, IsActive: true}
	project := &entity.ProjectEntity{ID: "proj-1", Status: entity.ProjectCompleted}

	resourceRepo.On("GetResourceByID", ctx, "res-1").Return(resource, (*app_errors.AppError)(nil))
	projectRepo.On("GetProjectByID", ctx, "proj-1").Return(project, (*app_errors.AppError)(nil))

	resp, err := service.CreateAllocation(ctx, &allocation_dto.CreateAllocationRequest{
		ResourceID:     "res-1",
		ProjectID:      "proj-1",
		AllocatedHours: 16,
		StartDate:      start,
		Role:           "Developer",
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, "allocation.project_closed", err.MessageKey)
}

func TestCreateAllocation_RejectsBadWeekKey(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAllocationRepo)
	resourceRepo := new(MockResourceRepo)
	projectRepo := new(MockProjectRepo)
	service := newTestAllocationService(repo, resourceRepo, projectRepo)

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	resp, err := service.CreateAllocation(ctx, &allocation_dto.CreateAllocationRequest{
		ResourceID:        "res-1",
		ProjectID:         "proj-1",
		AllocatedHours:    16,
		WeeklyAllocations: map[string]float64{"2026/35": 10},
		StartDate:         start,
		Role:              "Developer",
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrValidation, err.Type)
}
