package resource_repo

import (
	"context"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
)

type ResourceRepoContract interface {
	InsertResource(ctx context.Context, model *entity.ResourceEntity) (*entity.ResourceEntity, *app_errors.AppError)
	ListResources(ctx context.Context, filter entity.ResourceListFilter) ([]entity.ResourceEntity, int, *app_errors.AppError)
	GetResourceByID(ctx context.Context, resourceID string) (*entity.ResourceEntity, *app_errors.AppError)
	UpdateResource(ctx context.Context, model *entity.ResourceEntity) *app_errors.AppError
	HasAllocations(ctx context.Context, resourceID string) (bool, *app_errors.AppError)
	DeactivateResource(ctx context.Context, resourceID string) *app_errors.AppError
	DeleteResource(ctx context.Context, resourceID string) *app_errors.AppError
}
