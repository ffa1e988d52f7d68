package project_repo

import (
	"context"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/abstraction/tx"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
)

type ProjectRepoContract interface {
	InsertProject(ctx context.Context, model *entity.ProjectEntity) (*entity.ProjectEntity, *app_errors.AppError)
	ListProjects(ctx context.Context, filter entity.ProjectListFilter) ([]entity.ProjectEntity, int, *app_errors.AppError)
	GetProjectByID(ctx context.Context, projectID string) (*entity.ProjectEntity, *app_errors.AppError)
	GetProjectSums(ctx context.Context, projectID string) (allocated, logged float64, appErr *app_errors.AppError)
	UpdateProject(ctx context.Context, model *entity.ProjectEntity) *app_errors.AppError
	CancelProject(ctx context.Context, t tx.Tx, projectID string) *app_errors.AppError
	CancelActiveAllocations(ctx context.Context, t tx.Tx, projectID string) (int, *app_errors.AppError)
	CompleteProjectsPastEnd(ctx context.Context, cutoff time.Time) (int, *app_errors.AppError)
}
