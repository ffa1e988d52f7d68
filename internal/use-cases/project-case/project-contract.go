package project_case

import (
	"context"

	project_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/project-dto"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
)

// ProjectServiceContract reicht die Methoden für den ProjectService weiter.
type ProjectServiceContract interface {
	CreateProject(ctx context.Context, req *project_dto.CreateProjectRequest) (*project_dto.ProjectResponse, *app_errors.AppError)
	ListProjects(ctx context.Context, filter *project_dto.ListProjectFilter) ([]project_dto.ProjectResponse, int, *app_errors.AppError)
	GetProjectDetail(ctx context.Context, projectID string) (*project_dto.ProjectDetailResponse, *app_errors.AppError)
	UpdateProject(ctx context.Context, projectID string, req *project_dto.UpdateProjectRequest) (*project_dto.ProjectResponse, *app_errors.AppError)
	DeleteProject(ctx context.Context, projectID string) (*project_dto.DeleteProjectResponse, *app_errors.AppError)
}
