package timeentry_case

import (
	"context"
	"testing"
	"time"

	timeentry_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/timeentry-dto"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test Happy path
func TestUpsertTimeEntry_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTimeEntryRepo)
	allocationRepo := new(MockAllocationRepo)
	service := &TimeEntryService{repo: repo, allocationRepo: allocationRepo}

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	allocation := &entity.AllocationEntity{
		ID:         "alloc-1",
		ResourceID: "res-1",
		StartDate:  start,
		Status:     entity.AllocationActive,
	}

	allocationRepo.On("GetAllocationByID", ctx, "alloc-1").Return(allocation, (*app_errors.AppError)(nil))
	repo.On("UpsertTimeEntry", ctx, mock.AnythingOfType("*entity.TimeEntryEntity")).Return(&entity.TimeEntryEntity{
		ID:           "te-1",
		AllocationID: "alloc-1",
		WeekStart:    start,
		Monday:       8,
		Tuesday:      8,
		Wednesday:    8,
		Thursday:     4,
	}, (*app_errors.AppError)(nil))

	resp, err := service.UpsertTimeEntry(ctx, "alloc-1", "2026-W35", &timeentry_dto.UpsertTimeEntryRequest{
		Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 4,
	})

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "2026-W35", resp.Week)
	assert.Equal(t, start, resp.WeekStart)
	assert.Equal(t, 28.0, resp.TotalHours)

	repo.AssertExpectations(t)
	allocationRepo.AssertExpectations(t)
}

// Wochen außerhalb der Allokationslaufzeit werden abgelehnt.
func TestUpsertTimeEntry_WeekOutsideAllocation(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTimeEntryRepo)
	allocationRepo := new(MockAllocationRepo)
	service := &TimeEntryService{repo: repo, allocationRepo: allocationRepo}

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)
	allocation := &entity.AllocationEntity{
		ID:        "alloc-1",
		StartDate: start,
		EndDate:   &end,
		Status:    entity.AllocationActive,
	}

	allocationRepo.On("GetAllocationByID", ctx, "alloc-1").Return(allocation, (*app_errors.AppError)(nil))

	resp, err := service.UpsertTimeEntry(ctx, "alloc-1", "2026-W40", &timeentry_dto.UpsertTimeEntryRequest{Monday: 8})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, "time_entry.week_outside_allocation", err.MessageKey)

	repo.AssertNotCalled(t, "UpsertTimeEntry", mock.Anything, mock.Anything)
}

func TestUpsertTimeEntry_RejectsCancelledAllocation(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTimeEntryRepo)
	allocationRepo := new(MockAllocationRepo)
	service := &TimeEntryService{repo: repo, allocationRepo: allocationRepo}

	allocation := &entity.AllocationEntity{ID: "alloc-1", Status: entity.AllocationCancelled}

	allocationRepo.On("GetAllocationByID", ctx, "alloc-1").Return(allocation, (*app_errors.AppError)(nil))

	resp, err := service.UpsertTimeEntry(ctx, "alloc-1", "2026-W35", &timeentry_dto.UpsertTimeEntryRequest{Monday: 8})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, "allocation.not_active", err.MessageKey)
}

func TestUpsertTimeEntry_RejectsBadWeek(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTimeEntryRepo)
	allocationRepo := new(MockAllocationRepo)
	service := &TimeEntryService{repo: repo, allocationRepo: allocationRepo}

	allocation := &entity.AllocationEntity{
		ID:        "alloc-1",
		StartDate: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		Status:    entity.AllocationActive,
	}

	allocationRepo.On("GetAllocationByID", ctx, "alloc-1").Return(allocation, (*app_errors.AppError)(nil))

	resp, err := service.UpsertTimeEntry(ctx, "alloc-1", "woche-35", &timeentry_dto.UpsertTimeEntryRequest{Monday: 8})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrValidation, err.Type)
}
