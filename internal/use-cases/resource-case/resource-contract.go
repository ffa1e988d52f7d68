package resource_case

import (
	"context"

	resource_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/resource-dto"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
)

// ResourceServiceContract reicht die Methoden für den ResourceService weiter.
type ResourceServiceContract interface {
	CreateResource(ctx context.Context, req *resource_dto.CreateResourceRequest) (*resource_dto.ResourceResponse, *app_errors.AppError)
	ListResources(ctx context.Context, filter *resource_dto.ListResourceFilter) ([]resource_dto.ResourceResponse, int, *app_errors.AppError)
	GetResource(ctx context.Context, resourceID string) (*resource_dto.ResourceResponse, *app_errors.AppError)
	UpdateResource(ctx context.Context, resourceID string, req *resource_dto.UpdateResourceRequest) (*resource_dto.ResourceResponse, *app_errors.AppError)
	DeleteResource(ctx context.Context, resourceID string) (*resource_dto.DeleteResourceResponse, *app_errors.AppError)
}
