package project_case

import (
	"context"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/abstraction/tx"
	project_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/project-dto"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	project_repo "github.com/Xenn-00/kapazitaets-meister/internal/repo/project-repo"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type ProjectService struct {
	repo      project_repo.ProjectRepoContract
	txManager tx.TxManager
}

func NewProjectService(db *pgxpool.Pool) ProjectServiceContract {
	return &ProjectService{
		repo:      project_repo.NewProjectRepo(db),
		txManager: tx.NewPgxTxManager(db),
	}
}

func (s *ProjectService) CreateProject(ctx context.Context, req *project_dto.CreateProjectRequest) (*project_dto.ProjectResponse, *app_errors.AppError) {
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, app_errors.NewValidationError([]app_errors.FieldError{
			{Field: "end_date", Reason: "before_start_date", MessageKey: "validation.end_before_start"},
		})
	}

	id, idErr := uuid.NewV7()
	if idErr != nil {
		log.Error().Err(idErr).Msg("Fehler beim Erzeugen der UUID v7")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	status := entity.ProjectPlanning
	if req.Status != nil {
		status = entity.ProjectStatus(*req.Status)
	}

	model := &entity.ProjectEntity{
		ID:             id.String(),
		Name:           req.Name,
		Status:         status,
		Priority:       entity.ProjectPriority(req.Priority),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		EstimatedHours: req.EstimatedHours,
	}

	created, err := s.repo.InsertProject(ctx, model)
	if err != nil {
		return nil, err
	}

	return toProjectResponse(created), nil
}

func (s *ProjectService) ListProjects(ctx context.Context, filter *project_dto.ListProjectFilter) ([]project_dto.ProjectResponse, int, *app_errors.AppError) {
	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}

	entityFilter := entity.ProjectListFilter{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	if filter.Status != nil {
		status := entity.ProjectStatus(*filter.Status)
		entityFilter.Status = &status
	}
	if filter.Priority != nil {
		priority := entity.ProjectPriority(*filter.Priority)
		entityFilter.Priority = &priority
	}

	projects, total, err := s.repo.ListProjects(ctx, entityFilter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]project_dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, *toProjectResponse(&projects[i]))
	}
	return out, total, nil
}

func (s *ProjectService) GetProjectDetail(ctx context.Context, projectID string) (*project_dto.ProjectDetailResponse, *app_errors.AppError) {
	project, err := s.repo.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	allocated, logged, err := s.repo.GetProjectSums(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return &project_dto.ProjectDetailResponse{
		ProjectResponse: *toProjectResponse(project),
		AllocatedHours:  allocated,
		LoggedHours:     logged,
	}, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, projectID string, req *project_dto.UpdateProjectRequest) (*project_dto.ProjectResponse, *app_errors.AppError) {
	project, err := s.repo.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Status != nil {
		project.Status = entity.ProjectStatus(*req.Status)
	}
	if req.Priority != nil {
		project.Priority = entity.ProjectPriority(*req.Priority)
	}
	if req.StartDate != nil {
		project.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if req.EstimatedHours != nil {
		project.EstimatedHours = *req.EstimatedHours
	}

	if project.EndDate != nil && project.EndDate.Before(project.StartDate) {
		return nil, app_errors.NewValidationError([]app_errors.FieldError{
			{Field: "end_date", Reason: "before_start_date", MessageKey: "validation.end_before_start"},
		})
	}

	now := time.Now()
	project.UpdatedAt = &now

	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return nil, err
	}

	return toProjectResponse(project), nil
}

// DeleteProject storniert das Projekt und alle aktiven Allokationen in einer
// Transaktion. Zeiteinträge bleiben erhalten (Ist-Daten werden nie gelöscht).
func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) (*project_dto.DeleteProjectResponse, *app_errors.AppError) {
	if _, err := s.repo.GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		log.Error().Err(err.Err).Msg("Fehler beim Starten der DB-Transaktion")
		return nil, err
	}
	defer t.Rollback(ctx)

	if err := s.repo.CancelProject(ctx, t, projectID); err != nil {
		return nil, err
	}

	cancelled, err := s.repo.CancelActiveAllocations(ctx, t, projectID)
	if err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		log.Error().Err(err.Err).Msg("Fehler beim Ausführen der DB-Transaktion")
		return nil, err
	}

	return &project_dto.DeleteProjectResponse{
		ID:                   projectID,
		CancelledAllocations: cancelled,
	}, nil
}

func toProjectResponse(p *entity.ProjectEntity) *project_dto.ProjectResponse {
	return &project_dto.ProjectResponse{
		ID:             p.ID,
		Name:           p.Name,
		Status:         string(p.Status),
		Priority:       string(p.Priority),
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		EstimatedHours: p.EstimatedHours,
		CreatedAt:      p.CreatedAt,
	}
}
