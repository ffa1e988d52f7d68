package allocation_case

import (
	"context"

	"github.com/Xenn-00/kapazitaets-meister/internal/config"
	allocation_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/allocation-dto"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	allocation_repo "github.com/Xenn-00/kapazitaets-meister/internal/repo/allocation-repo"
	project_repo "github.com/Xenn-00/kapazitaets-meister/internal/repo/project-repo"
	resource_repo "github.com/Xenn-00/kapazitaets-meister/internal/repo/resource-repo"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type AllocationService struct {
	repo         allocation_repo.AllocationRepoContract
	resourceRepo resource_repo.ResourceRepoContract
	projectRepo  project_repo.ProjectRepoContract

	nonProjectHours   float64
	clampThresholdPct float64
}

func NewAllocationService(db *pgxpool.Pool, cfg *config.AppConfig) AllocationServiceContract {
	return &AllocationService{
		repo:              allocation_repo.NewAllocationRepo(db),
		resourceRepo:      resource_repo.NewResourceRepo(db),
		projectRepo:       project_repo.NewProjectRepo(db),
		nonProjectHours:   cfg.PLANNING.NonProjectHours,
		clampThresholdPct: cfg.PLANNING.ClampThresholdPct,
	}
}

// CreateAllocation legt eine Allokation an. Hebt sie die Auslastung der
// Ressource in einer Woche über die konfigurierte Schwelle, wird GEWARNT;
// die angefragten Stunden werden nie stillschweigend gekürzt.
func (s *AllocationService) CreateAllocation(ctx context.Context, req *allocation_dto.CreateAllocationRequest) (*allocation_dto.AllocationResponse, *app_errors.AppError) {
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, app_errors.NewValidationError([]app_errors.FieldError{
			{Field: "end_date", Reason: "before_start_date", MessageKey: "validation.end_before_start"},
		})
	}
	for week := range req.WeeklyAllocations {
		if !isValidWeekKey(week) {
			return nil, app_errors.NewValidationError([]app_errors.FieldError{
				{Field: "weekly_allocations", Reason: "invalid_week_key", MessageKey: "validation.invalid_iso_week", Params: map[string]any{"week": week}},
			})
		}
	}

	resource, err := s.resourceRepo.GetResourceByID(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}
	if !resource.IsActive {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "allocation.resource_inactive", nil)
	}

	project, err := s.projectRepo.GetProjectByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.Status == entity.ProjectCompleted || project.Status == entity.ProjectCancelled {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "allocation.project_closed", nil)
	}

	id, idErr := uuid.NewV7()
	if idErr != nil {
		log.Error().Err(idErr).Msg("Fehler beim Erzeugen der UUID v7")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	model := &entity.AllocationEntity{
		ID:                id.String(),
		ResourceID:        req.ResourceID,
		ProjectID:         req.ProjectID,
		AllocatedHours:    req.AllocatedHours,
		WeeklyAllocations: req.WeeklyAllocations,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Role:              req.Role,
		Status:            entity.AllocationActive,
	}

	// Warnungen gegen den Bestand rechnen, bevor die neue Allokation Teil
	// des Bestands ist.
	existing, err := s.repo.ListActiveByResource(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}
	warnings := s.capacityWarnings(resource, existing, model)

	created, err := s.repo.InsertAllocation(ctx, model)
	if err != nil {
		return nil, err
	}

	resp := toAllocationResponse(created)
	resp.Warnings = warnings
	return resp, nil
}

func (s *AllocationService) GetAllocation(ctx context.Context, allocationID string) (*allocation_dto.AllocationResponse, *app_errors.AppError) {
	allocation, err := s.repo.GetAllocationByID(ctx, allocationID)
	if err != nil {
		return nil, err
	}
	return toAllocationResponse(allocation), nil
}

func (s *AllocationService) ListByResource(ctx context.Context, resourceID string, filter allocation_dto.ListAllocationFilter) ([]allocation_dto.AllocationResponse, *app_errors.AppError) {
	if _, err := s.resourceRepo.GetResourceByID(ctx, resourceID); err != nil {
		return nil, err
	}

	allocations, err := s.repo.ListByResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if filter.Week != nil {
		allocations = filterByWeek(allocations, *filter.Week)
	}
	return toAllocationResponses(allocations), nil
}

// filterByWeek behält Allokationen, deren Laufzeit die ISO-Woche schneidet
// oder die einen Override für genau diese Woche tragen.
func filterByWeek(allocations []entity.AllocationEntity, week string) []entity.AllocationEntity {
	out := make([]entity.AllocationEntity, 0, len(allocations))
	for i := range allocations {
		a := &allocations[i]
		if _, override := a.WeeklyAllocations[week]; !override && !utils.OverlapsWeek(a.StartDate, a.EndDate, week) {
			continue
		}
		out = append(out, *a)
	}
	return out
}

func (s *AllocationService) ListByProject(ctx context.Context, projectID string) ([]allocation_dto.AllocationResponse, *app_errors.AppError) {
	if _, err := s.projectRepo.GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	allocations, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return toAllocationResponses(allocations), nil
}

func (s *AllocationService) UpdateAllocation(ctx context.Context, allocationID string, req *allocation_dto.UpdateAllocationRequest) (*allocation_dto.AllocationResponse, *app_errors.AppError) {
	allocation, err := s.repo.GetAllocationByID(ctx, allocationID)
	if err != nil {
		return nil, err
	}

	if req.AllocatedHours != nil {
		allocation.AllocatedHours = *req.AllocatedHours
	}
	if req.WeeklyAllocations != nil {
		for week := range req.WeeklyAllocations {
			if !isValidWeekKey(week) {
				return nil, app_errors.NewValidationError([]app_errors.FieldError{
					{Field: "weekly_allocations", Reason: "invalid_week_key", MessageKey: "validation.invalid_iso_week", Params: map[string]any{"week": week}},
				})
			}
		}
		allocation.WeeklyAllocations = req.WeeklyAllocations
	}
	if req.StartDate != nil {
		allocation.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		allocation.EndDate = req.EndDate
	}
	if req.Status != nil {
		allocation.Status = entity.AllocationStatus(*req.Status)
	}

	if allocation.EndDate != nil && allocation.EndDate.Before(allocation.StartDate) {
		return nil, app_errors.NewValidationError([]app_errors.FieldError{
			{Field: "end_date", Reason: "before_start_date", MessageKey: "validation.end_before_start"},
		})
	}

	if err := s.repo.UpdateAllocation(ctx, allocation); err != nil {
		return nil, err
	}

	resp := toAllocationResponse(allocation)

	resource, err := s.resourceRepo.GetResourceByID(ctx, allocation.ResourceID)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.ListActiveByResource(ctx, allocation.ResourceID)
	if err != nil {
		return nil, err
	}
	resp.Warnings = s.capacityWarnings(resource, withoutAllocation(existing, allocation.ID), allocation)

	return resp, nil
}

// SetWeekOverride setzt die Stunden einer einzelnen ISO-Woche. Der Override
// ERSETZT die Basisstunden der Woche, er addiert sich nicht.
func (s *AllocationService) SetWeekOverride(ctx context.Context, allocationID, isoWeek string, req *allocation_dto.SetWeekOverrideRequest) (*allocation_dto.AllocationResponse, *app_errors.AppError) {
	allocation, err := s.repo.GetAllocationByID(ctx, allocationID)
	if err != nil {
		return nil, err
	}
	if allocation.Status != entity.AllocationActive {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "allocation.not_active", nil)
	}

	if err := s.repo.SetWeekOverride(ctx, allocationID, isoWeek, req.Hours); err != nil {
		return nil, err
	}

	if allocation.WeeklyAllocations == nil {
		allocation.WeeklyAllocations = make(map[string]float64)
	}
	allocation.WeeklyAllocations[isoWeek] = req.Hours

	resp := toAllocationResponse(allocation)

	resource, err := s.resourceRepo.GetResourceByID(ctx, allocation.ResourceID)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.ListActiveByResource(ctx, allocation.ResourceID)
	if err != nil {
		return nil, err
	}
	resp.Warnings = s.capacityWarnings(resource, withoutAllocation(existing, allocation.ID), allocation)

	return resp, nil
}

func (s *AllocationService) CancelAllocation(ctx context.Context, allocationID string) (*allocation_dto.DeleteAllocationResponse, *app_errors.AppError) {
	if _, err := s.repo.GetAllocationByID(ctx, allocationID); err != nil {
		return nil, err
	}

	if err := s.repo.CancelAllocation(ctx, allocationID); err != nil {
		return nil, err
	}
	return &allocation_dto.DeleteAllocationResponse{ID: allocationID}, nil
}

func toAllocationResponse(a *entity.AllocationEntity) *allocation_dto.AllocationResponse {
	return &allocation_dto.AllocationResponse{
		ID:                a.ID,
		ResourceID:        a.ResourceID,
		ProjectID:         a.ProjectID,
		AllocatedHours:    a.AllocatedHours,
		WeeklyAllocations: a.WeeklyAllocations,
		StartDate:         a.StartDate,
		EndDate:           a.EndDate,
		Role:              a.Role,
		Status:            string(a.Status),
		CreatedAt:         a.CreatedAt,
	}
}

func toAllocationResponses(allocations []entity.AllocationEntity) []allocation_dto.AllocationResponse {
	out := make([]allocation_dto.AllocationResponse, 0, len(allocations))
	for i := range allocations {
		out = append(out, *toAllocationResponse(&allocations[i]))
	}
	return out
}

func withoutAllocation(allocations []entity.AllocationEntity, id string) []entity.AllocationEntity {
	out := make([]entity.AllocationEntity, 0, len(allocations))
	for _, a := range allocations {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}
