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

// Test Happy path
func TestGetGamified_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanningRepo)
	service := newTestDashboardService(repo)

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	snapshot := &entity.PlanningSnapshot{
		Resources: []entity.ResourceEntity{
			{ID: "res-1", Name: "Anna", WeeklyCapacityHours: 40},
		},
		Allocations: []entity.AllocationEntity{
			// 27,2h auf 32h effektiv = 85 % → Balance voll.
			{ID: "alloc-1", ResourceID: "res-1", AllocatedHours: 27.2, StartDate: start, Status: entity.AllocationActive},
		},
		TimeEntries: []entity.TimeEntryEntity{
			// Alles wie geplant gebucht → Disziplin voll.
			{ID: "te-1", AllocationID: "alloc-1", WeekStart: start, Monday: 5.2, Tuesday: 5.5, Wednesday: 5.5, Thursday: 5.5, Friday: 5.5},
		},
	}

	repo.On("LoadSnapshot", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(snapshot, (*app_errors.AppError)(nil))

	resp, err := service.GetGamified(ctx)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.False(t, resp.Degraded)
	assert.Equal(t, "2026-W35", resp.Week)
	assert.Len(t, resp.Scores, 1)

	score := resp.Scores[0]
	assert.Equal(t, "res-1", score.ResourceID)
	assert.InDelta(t, 100.0, score.BalancePoints, 0.001)
	assert.InDelta(t, 100.0, score.DisciplinePoints, 0.001)
	assert.Equal(t, 100, score.Score)
	assert.Equal(t, "Kapazitäts-Meister", score.Badge)

	repo.AssertExpectations(t)
}

// Zeiteinträge fremder Wochen zählen nicht in die Wochendisziplin.
func TestGetGamified_IgnoresForeignWeekEntries(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanningRepo)
	service := newTestDashboardService(repo)

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	snapshot := &entity.PlanningSnapshot{
		Resources: []entity.ResourceEntity{
			{ID: "res-1", Name: "Anna", WeeklyCapacityHours: 40},
		},
		Allocations: []entity.AllocationEntity{
			{ID: "alloc-1", ResourceID: "res-1", AllocatedHours: 32, StartDate: start.AddDate(0, 0, -7), Status: entity.AllocationActive},
		},
		TimeEntries: []entity.TimeEntryEntity{
			// Vorwoche, darf die laufende Woche nicht aufblähen.
			{ID: "te-old", AllocationID: "alloc-1", WeekStart: start.AddDate(0, 0, -7), Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8},
		},
	}

	repo.On("LoadSnapshot", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(snapshot, (*app_errors.AppError)(nil))

	resp, err := service.GetGamified(ctx)

	assert.Nil(t, err)
	assert.Len(t, resp.Scores, 1)
	assert.Equal(t, 0.0, resp.Scores[0].DisciplinePoints)

	repo.AssertExpectations(t)
}

func TestGetGamified_DegradesOnRepoFailure(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanningRepo)
	service := newTestDashboardService(repo)

	dbErr := app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", errors.New("down"))
	repo.On("LoadSnapshot", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return((*entity.PlanningSnapshot)(nil), dbErr)

	resp, err := service.GetGamified(ctx)

	assert.Nil(t, err)
	assert.True(t, resp.Degraded)
	assert.Empty(t, resp.Scores)

	repo.AssertExpectations(t)
}
