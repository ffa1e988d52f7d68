package allocation_case

import (
	"context"

	allocation_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/allocation-dto"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
)

// AllocationServiceContract reicht die Methoden für den AllocationService weiter.
type AllocationServiceContract interface {
	CreateAllocation(ctx context.Context, req *allocation_dto.CreateAllocationRequest) (*allocation_dto.AllocationResponse, *app_errors.AppError)
	GetAllocation(ctx context.Context, allocationID string) (*allocation_dto.AllocationResponse, *app_errors.AppError)
	ListByResource(ctx context.Context, resourceID string, filter allocation_dto.ListAllocationFilter) ([]allocation_dto.AllocationResponse, *app_errors.AppError)
	ListByProject(ctx context.Context, projectID string) ([]allocation_dto.AllocationResponse, *app_errors.AppError)
	UpdateAllocation(ctx context.Context, allocationID string, req *allocation_dto.UpdateAllocationRequest) (*allocation_dto.AllocationResponse, *app_errors.AppError)
	SetWeekOverride(ctx context.Context, allocationID, isoWeek string, req *allocation_dto.SetWeekOverrideRequest) (*allocation_dto.AllocationResponse, *app_errors.AppError)
	CancelAllocation(ctx context.Context, allocationID string) (*allocation_dto.DeleteAllocationResponse, *app_errors.AppError)
}
