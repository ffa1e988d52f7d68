package timeentry_case

import (
	"context"
	"time"

	timeentry_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/timeentry-dto"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
)

// TimeEntryServiceContract reicht die Methoden für den TimeEntryService weiter.
type TimeEntryServiceContract interface {
	UpsertTimeEntry(ctx context.Context, allocationID, isoWeek string, req *timeentry_dto.UpsertTimeEntryRequest) (*timeentry_dto.TimeEntryResponse, *app_errors.AppError)
	ListByAllocation(ctx context.Context, allocationID string) ([]timeentry_dto.TimeEntryResponse, *app_errors.AppError)
	ListByResourceRange(ctx context.Context, resourceID string, from, to time.Time) ([]timeentry_dto.TimeEntryResponse, *app_errors.AppError)
}
