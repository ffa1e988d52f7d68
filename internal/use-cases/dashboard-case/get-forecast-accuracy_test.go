package dashboard_case

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test Happy path: Abweichung gebucht vs. geplant pro Projekt.
func TestGetForecastAccuracy_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanningRepo)
	service := newTestDashboardService(repo)

	week34 := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	week35 := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	snapshot := &entity.PlanningSnapshot{
		Allocations: []entity.AllocationEntity{
			{ID: "alloc-1", ResourceID: "res-1", ProjectID: "proj-1", AllocatedHours: 20, StartDate: week34, Status: entity.AllocationActive},
		},
		TimeEntries: []entity.TimeEntryEntity{
			// W34: 18h auf 20h geplant → 10 % Abweichung.
			{ID: "te-1", AllocationID: "alloc-1", WeekStart: week34, Monday: 4, Tuesday: 4, Wednesday: 4, Thursday: 3, Friday: 3},
			// W35: 22h auf 20h geplant → 10 % Abweichung.
			{ID: "te-2", AllocationID: "alloc-1", WeekStart: week35, Monday: 5, Tuesday: 5, Wednesday: 4, Thursday: 4, Friday: 4},
		},
	}

	repo.On("LoadSnapshot", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(snapshot, (*app_errors.AppError)(nil))
	repo.On("ListProjectsWithNames", ctx).Return(map[string]string{"proj-1": "Website Relaunch"}, (*app_errors.AppError)(nil))

	resp, err := service.GetForecastAccuracy(ctx)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.False(t, resp.Degraded)
	assert.Len(t, resp.Projects, 1)

	p := resp.Projects[0]
	assert.Equal(t, "proj-1", p.ProjectID)
	assert.Equal(t, "Website Relaunch", p.ProjectName)
	assert.Equal(t, 2, p.SampleCount)
	assert.NotNil(t, p.AccuracyPct)
	assert.InDelta(t, 90.0, *p.AccuracyPct, 0.001)

	repo.AssertExpectations(t)
}

// Projekte ohne einen einzigen Messpunkt melden keine Genauigkeit statt 0 %.
func TestGetForecastAccuracy_NoSamples(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanningRepo)
	service := newTestDashboardService(repo)

	week35 := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	snapshot := &entity.PlanningSnapshot{
		Allocations: []entity.AllocationEntity{
			{ID: "alloc-1", ResourceID: "res-1", ProjectID: "proj-1", AllocatedHours: 0, StartDate: week35, Status: entity.AllocationActive},
		},
		TimeEntries: []entity.TimeEntryEntity{
			{ID: "te-1", AllocationID: "alloc-1", WeekStart: week35, Monday: 4},
		},
	}

	repo.On("LoadSnapshot", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(snapshot, (*app_errors.AppError)(nil))
	repo.On("ListProjectsWithNames", ctx).Return(map[string]string{"proj-1": "Leerlauf"}, (*app_errors.AppError)(nil))

	resp, err := service.GetForecastAccuracy(ctx)

	assert.Nil(t, err)
	assert.Len(t, resp.Projects, 1)
	assert.Nil(t, resp.Projects[0].AccuracyPct)
	assert.Equal(t, 0, resp.Projects[0].SampleCount)

	repo.AssertExpectations(t)
}

func TestGetForecastAccuracy_DegradesOnRepoFailure(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanningRepo)
	service := newTestDashboardService(repo)

	dbErr := app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", errors.New("down"))
	repo.On("LoadSnapshot", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return((*entity.PlanningSnapshot)(nil), dbErr)

	resp, err := service.GetForecastAccuracy(ctx)

	assert.Nil(t, err)
	assert.True(t, resp.Degraded)
	assert.Empty(t, resp.Projects)

	repo.AssertExpectations(t)
}

// Die Projektliste kommt alphabetisch, unabhängig von der Map-Iteration.
func TestGetForecastAccuracy_SortedByProjectName(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanningRepo)
	service := newTestDashboardService(repo)

	week35 := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	snapshot := &entity.PlanningSnapshot{
		Allocations: []entity.AllocationEntity{
			{ID: "alloc-1", ResourceID: "res-1", ProjectID: "proj-1", AllocatedHours: 20, StartDate: week35, Status: entity.AllocationActive},
			{ID: "alloc-2", ResourceID: "res-1", ProjectID: "proj-2", AllocatedHours: 10, StartDate: week35, Status: entity.AllocationActive},
		},
		TimeEntries: []entity.TimeEntryEntity{
			{ID: "te-1", AllocationID: "alloc-1", WeekStart: week35, Monday: 4, Tuesday: 4, Wednesday: 4, Thursday: 4, Friday: 4},
			{ID: "te-2", AllocationID: "alloc-2", WeekStart: week35, Monday: 5, Tuesday: 5},
		},
	}

	repo.On("LoadSnapshot", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(snapshot, (*app_errors.AppError)(nil))
	repo.On("ListProjectsWithNames", ctx).Return(map[string]string{"proj-1": "Zeiterfassung", "proj-2": "Archiv-Migration"}, (*app_errors.AppError)(nil))

	resp, err := service.GetForecastAccuracy(ctx)

	assert.Nil(t, err)
	assert.Len(t, resp.Projects, 2)
	assert.Equal(t, "Archiv-Migration", resp.Projects[0].ProjectName)
	assert.Equal(t, "Zeiterfassung", resp.Projects[1].ProjectName)

	repo.AssertExpectations(t)
}
