package timeentry_repo

import (
	"context"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
)

type TimeEntryRepoContract interface {
	UpsertTimeEntry(ctx context.Context, model *entity.TimeEntryEntity) (*entity.TimeEntryEntity, *app_errors.AppError)
	ListByAllocation(ctx context.Context, allocationID string) ([]entity.TimeEntryEntity, *app_errors.AppError)
	ListByResourceRange(ctx context.Context, resourceID string, from, to time.Time) ([]entity.TimeEntryEntity, *app_errors.AppError)
}
