package report_case

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test Happy path: eine Zeile pro Ressource und Woche.
func TestBuildUtilizationCSV_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanningRepo)
	service := &ReportService{repo: repo, nonProjectHours: 8, now: time.Now}

	from := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 13)

	snapshot := &entity.PlanningSnapshot{
		Resources: []entity.ResourceEntity{
			{ID: "res-1", Name: "Anna", Department: "Engineering", WeeklyCapacityHours: 40},
		},
		Allocations: []entity.AllocationEntity{
			{ID: "alloc-1", ResourceID: "res-1", AllocatedHours: 16, StartDate: from, Status: entity.AllocationActive},
		},
		TimeEntries: []entity.TimeEntryEntity{
			{ID: "te-1", AllocationID: "alloc-1", WeekStart: from, Monday: 8, Tuesday: 6},
		},
	}

	repo.On("LoadSnapshot", ctx, from, to).Return(snapshot, (*app_errors.AppError)(nil))

	data, err := service.BuildUtilizationCSV(ctx, from, to)

	assert.Nil(t, err)
	assert.NotEmpty(t, data)

	records, csvErr := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	assert.NoError(t, csvErr)
	// Header + 2 Wochen für eine Ressource.
	assert.Len(t, records, 3)
	assert.Equal(t, []string{"resource", "department", "week", "capacity_hours", "allocated_hours", "logged_hours", "utilization_pct"}, records[0])
	assert.Equal(t, []string{"Anna", "Engineering", "2026-W35", "32.0", "16.0", "14.0", "50.0"}, records[1])
	// Woche ohne Zeiteinträge: Ist-Stunden 0.
	assert.Equal(t, "0.0", records[2][5])

	repo.AssertExpectations(t)
}

func TestBuildUtilizationCSV_RejectsInvertedRange(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanningRepo)
	service := &ReportService{repo: repo, nonProjectHours: 8, now: time.Now}

	from := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	data, err := service.BuildUtilizationCSV(ctx, from, from.AddDate(0, 0, -7))

	assert.Nil(t, data)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrValidation, err.Type)

	repo.AssertExpectations(t)
}

// Der Wochenreport meldet die Vorwoche und bestätigt nur die Einreihung.
func TestEnqueueWeeklyReport_Success(t *testing.T) {
	ctx := context.Background()

	taskQueue := new(MockTaskQueue)
	service := &ReportService{
		taskQueue: taskQueue,
		now: func() time.Time {
			return time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC) // 2026-W35
		},
	}

	taskQueue.On("EnqueueBuildWeeklyReport", mock.AnythingOfType("*worker_task.BuildWeeklyReportPayload")).Return(nil)

	resp, err := service.EnqueueWeeklyReport(ctx, "chef@example.com")

	assert.Nil(t, err)
	assert.True(t, resp.Enqueued)
	assert.Equal(t, "2026-W34", resp.Week)
	assert.Equal(t, "chef@example.com", resp.Email)

	taskQueue.AssertExpectations(t)
}
