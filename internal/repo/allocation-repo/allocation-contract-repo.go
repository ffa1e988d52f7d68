package allocation_repo

import (
	"context"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
)

type AllocationRepoContract interface {
	InsertAllocation(ctx context.Context, model *entity.AllocationEntity) (*entity.AllocationEntity, *app_errors.AppError)
	GetAllocationByID(ctx context.Context, allocationID string) (*entity.AllocationEntity, *app_errors.AppError)
	ListByResource(ctx context.Context, resourceID string) ([]entity.AllocationEntity, *app_errors.AppError)
	ListByProject(ctx context.Context, projectID string) ([]entity.AllocationEntity, *app_errors.AppError)
	ListActiveByResource(ctx context.Context, resourceID string) ([]entity.AllocationEntity, *app_errors.AppError)
	UpdateAllocation(ctx context.Context, model *entity.AllocationEntity) *app_errors.AppError
	SetWeekOverride(ctx context.Context, allocationID, isoWeek string, hours float64) *app_errors.AppError
	CancelAllocation(ctx context.Context, allocationID string) *app_errors.AppError
}
