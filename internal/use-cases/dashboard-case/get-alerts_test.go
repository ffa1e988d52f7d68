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

// Test Happy path: nur Ressourcen über 75 % tauchen in der Alert-Liste auf.
func TestGetAlerts_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanningRepo)
	service := newTestDashboardService(repo)

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	snapshot := &entity.PlanningSnapshot{
		Resources: []entity.ResourceEntity{
			{ID: "res-1", Name: "Anna", Department: "Engineering", WeeklyCapacityHours: 40},
			{ID: "res-2", Name: "Ben", Department: "Design", WeeklyCapacityHours: 40},
			{ID: "res-3", Name: "Carla", Department: "Engineering", WeeklyCapacityHours: 40},
		},
		Allocations: []entity.AllocationEntity{
			// Anna: 40/32 = 125 % → Overallocated
			{ID: "alloc-1", ResourceID: "res-1", AllocatedHours: 40, StartDate: start, Status: entity.AllocationActive},
			// Ben: 16/32 = 50 % → kein Alert
			{ID: "alloc-2", ResourceID: "res-2", AllocatedHours: 16, StartDate: start, Status: entity.AllocationActive},
			// Carla: 30/32 = 93,75 % → Warning
			{ID: "alloc-3", ResourceID: "res-3", AllocatedHours: 30, StartDate: start, Status: entity.AllocationActive},
		},
	}

	repo.On("LoadSnapshot", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(snapshot, (*app_errors.AppError)(nil))

	resp, err := service.GetAlerts(ctx)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.False(t, resp.Degraded)
	assert.Equal(t, "2026-W35", resp.Week)
	assert.Len(t, resp.Alerts, 2)

	assert.Equal(t, "res-1", resp.Alerts[0].ResourceID)
	assert.Equal(t, "Overallocated", resp.Alerts[0].Severity)
	assert.Equal(t, "alerts.overallocated", resp.Alerts[0].MessageKey)
	assert.InDelta(t, 125.0, resp.Alerts[0].UtilizationPct, 0.001)

	assert.Equal(t, "res-3", resp.Alerts[1].ResourceID)
	assert.Equal(t, "Warning", resp.Alerts[1].Severity)

	repo.AssertExpectations(t)
}

func TestGetAlerts_DegradesOnRepoFailure(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanningRepo)
	service := newTestDashboardService(repo)

	dbErr := app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", errors.New("timeout"))
	repo.On("LoadSnapshot", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return((*entity.PlanningSnapshot)(nil), dbErr)

	resp, err := service.GetAlerts(ctx)

	assert.Nil(t, err)
	assert.True(t, resp.Degraded)
	assert.Empty(t, resp.Alerts)
	assert.NotNil(t, resp.Alerts, "leere Liste statt null, damit Clients nicht auf nil laufen")

	repo.AssertExpectations(t)
}
