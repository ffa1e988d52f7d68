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

// Ohne Wochenfilter kommt die volle Liste zurück.
func TestListByResource_NoFilter(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAllocationRepo)
	resourceRepo := new(MockResourceRepo)
	projectRepo := new(MockProjectRepo)
	service := newTestAllocationService(repo, resourceRepo, projectRepo)

	week35Start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	week35End := week35Start.AddDate(0, 0, 6)
	week40Start := time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC)

	allocations := []entity.AllocationEntity{
		{ID: "alloc-1", ResourceID: "res-1", ProjectID: "proj-1", AllocatedHours: 16, StartDate: week35Start, EndDate: &week35End, Status: entity.AllocationActive},
		{ID: "alloc-2", ResourceID: "res-1", ProjectID: "proj-2", AllocatedHours: 8, StartDate: week40Start, Status: entity.AllocationActive},
	}

	resourceRepo.On("GetResourceByID", ctx, "res-1").Return(&entity.ResourceEntity{ID: "res-1", IsActive: true}, (*app_errors.AppError)(nil))
	repo.On("ListByResource", ctx, "res-1").Return(allocations, (*app_errors.AppError)(nil))

	resp, err := service.ListByResource(ctx, "res-1", allocation_dto.ListAllocationFilter{})

	assert.Nil(t, err)
	assert.Len(t, resp, 2)
}

// ?week= behält nur Allokationen, deren Laufzeit die Woche schneidet.
func TestListByResource_WeekFilter(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAllocationRepo)
	resourceRepo := new(MockResourceRepo)
	projectRepo := new(MockProjectRepo)
	service := newTestAllocationService(repo, resourceRepo, projectRepo)

	week35Start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	week35End := week35Start.AddDate(0, 0, 6)
	week40Start := time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC)

	allocations := []entity.AllocationEntity{
		{ID: "alloc-1", ResourceID: "res-1", ProjectID: "proj-1", AllocatedHours: 16, StartDate: week35Start, EndDate: &week35End, Status: entity.AllocationActive},
		{ID: "alloc-2", ResourceID: "res-1", ProjectID: "proj-2", AllocatedHours: 8, StartDate: week40Start, Status: entity.AllocationActive},
	}

	resourceRepo.On("GetResourceByID", ctx, "res-1").Return(&entity.ResourceEntity{ID: "res-1", IsActive: true}, (*app_errors.AppError)(nil))
	repo.On("ListByResource", ctx, "res-1").Return(allocations, (*app_errors.AppError)(nil))

	week := "2026-W35"
	resp, err := service.ListByResource(ctx, "res-1", allocation_dto.ListAllocationFilter{Week: &week})

	assert.Nil(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "alloc-1", resp[0].ID)
}

// Ein Override für die gesuchte Woche zählt auch außerhalb der Laufzeit.
func TestListByResource_WeekFilterMatchesOverride(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAllocationRepo)
	resourceRepo := new(MockResourceRepo)
	projectRepo := new(MockProjectRepo)
	service := newTestAllocationService(repo, resourceRepo, projectRepo)

	week35Start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	week35End := week35Start.AddDate(0, 0, 6)

	allocations := []entity.AllocationEntity{
		{
			ID: "alloc-1", ResourceID: "res-1", ProjectID: "proj-1", AllocatedHours: 16,
			StartDate: week35Start, EndDate: &week35End, Status: entity.AllocationActive,
			WeeklyAllocations: map[string]float64{"2026-W40": 4},
		},
	}

	resourceRepo.On("GetResourceByID", ctx, "res-1").Return(&entity.ResourceEntity{ID: "res-1", IsActive: true}, (*app_errors.AppError)(nil))
	repo.On("ListByResource", ctx, "res-1").Return(allocations, (*app_errors.AppError)(nil))

	week := "2026-W40"
	resp, err := service.ListByResource(ctx, "res-1", allocation_dto.ListAllocationFilter{Week: &week})

	assert.Nil(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "alloc-1", resp[0].ID)
}
