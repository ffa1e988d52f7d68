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

// fixedClock liegt in ISO-Woche 2026-W35 (Montag, 24.08.2026).
func fixedClock() time.Time {
	return time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
}

func newTestDashboardService(repo *MockPlanningRepo) *DashboardService {
	return &DashboardService{
		repo:            repo,
		nonProjectHours: 8,
		heatmapWeeks:    8,
		now:             fixedClock,
	}
}

// Test Happy path
func TestGetKpis_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanningRepo)
	service := newTestDashboardService(repo)

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	snapshot := &entity.PlanningSnapshot{
		Resources: []entity.ResourceEntity{
			{ID: "res-1", Name: "Anna", WeeklyCapacityHours: 40, IsActive: true},
			{ID: "res-2", Name: "Ben", WeeklyCapacityHours: 40, IsActive: true},
		},
		Allocations: []entity.AllocationEntity{
			{ID: "alloc-1", ResourceID: "res-1", ProjectID: "proj-1", AllocatedHours: 32, StartDate: start, Status: entity.AllocationActive},
			{ID: "alloc-2", ResourceID: "res-2", ProjectID: "proj-1", AllocatedHours: 16, StartDate: start, Status: entity.AllocationActive},
		},
	}

	// expectation
	repo.On("LoadSnapshot", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(snapshot, (*app_errors.AppError)(nil))
	repo.On("CountActiveProjects", ctx).Return(3, (*app_errors.AppError)(nil))

	resp, err := service.GetKpis(ctx)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.False(t, resp.Degraded)

	assert.Equal(t, "2026-W35", resp.Week)
	assert.Equal(t, 2, resp.ActiveResources)
	assert.Equal(t, 3, resp.ActiveProjects)
	// res-1: 100 %, res-2: 50 % → Schnitt 75 %, ein Konflikt.
	assert.InDelta(t, 75.0, resp.AvgUtilizationPct, 0.001)
	assert.Equal(t, 1, resp.ConflictCount)
	assert.Equal(t, 64.0, resp.CapacityHours)
	assert.Equal(t, 48.0, resp.DemandHours)

	repo.AssertExpectations(t)
}

// Datenbankausfall darf das Dashboard nie brechen: genullte Antwort, kein Fehler.
func TestGetKpis_DegradesOnRepoFailure(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanningRepo)
	service := newTestDashboardService(repo)

	dbErr := app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", errors.New("connection refused"))
	repo.On("LoadSnapshot", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return((*entity.PlanningSnapshot)(nil), dbErr)

	resp, err := service.GetKpis(ctx)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.True(t, resp.Degraded)
	assert.Equal(t, "2026-W35", resp.Week)
	assert.Equal(t, 0, resp.ActiveResources)
	assert.Equal(t, 0.0, resp.AvgUtilizationPct)

	repo.AssertExpectations(t)
}

func TestGetKpis_EmptySnapshot(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanningRepo)
	service := newTestDashboardService(repo)

	repo.On("LoadSnapshot", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(&entity.PlanningSnapshot{}, (*app_errors.AppError)(nil))
	repo.On("CountActiveProjects", ctx).Return(0, (*app_errors.AppError)(nil))

	resp, err := service.GetKpis(ctx)

	assert.Nil(t, err)
	assert.False(t, resp.Degraded)
	assert.Equal(t, 0.0, resp.AvgUtilizationPct)
	assert.Equal(t, 0, resp.ConflictCount)

	repo.AssertExpectations(t)
}
