package resource_case

import (
	"context"

	resource_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/resource-dto"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	resource_repo "github.com/Xenn-00/kapazitaets-meister/internal/repo/resource-repo"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type ResourceService struct {
	repo resource_repo.ResourceRepoContract
}

func NewResourceService(db *pgxpool.Pool) ResourceServiceContract {
	return &ResourceService{
		repo: resource_repo.NewResourceRepo(db),
	}
}

func (s *ResourceService) CreateResource(ctx context.Context, req *resource_dto.CreateResourceRequest) (*resource_dto.ResourceResponse, *app_errors.AppError) {
	id, idErr := uuid.NewV7()
	if idErr != nil {
		log.Error().Err(idErr).Msg("Fehler beim Erzeugen der UUID v7")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	model := &entity.ResourceEntity{
		ID:                  id.String(),
		Name:                req.Name,
		Email:               req.Email,
		Department:          req.Department,
		Role:                req.Role,
		WeeklyCapacityHours: req.WeeklyCapacityHours,
		IsActive:            true,
	}

	created, err := s.repo.InsertResource(ctx, model)
	if err != nil {
		return nil, err
	}

	return toResourceResponse(created), nil
}

func (s *ResourceService) ListResources(ctx context.Context, filter *resource_dto.ListResourceFilter) ([]resource_dto.ResourceResponse, int, *app_errors.AppError) {
	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}

	resources, total, err := s.repo.ListResources(ctx, entity.ResourceListFilter{
		Department: filter.Department,
		Active:     filter.Active,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	})
	if err != nil {
		return nil, 0, err
	}

	out := make([]resource_dto.ResourceResponse, 0, len(resources))
	for i := range resources {
		out = append(out, *toResourceResponse(&resources[i]))
	}
	return out, total, nil
}

func (s *ResourceService) GetResource(ctx context.Context, resourceID string) (*resource_dto.ResourceResponse, *app_errors.AppError) {
	resource, err := s.repo.GetResourceByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	return toResourceResponse(resource), nil
}

func (s *ResourceService) UpdateResource(ctx context.Context, resourceID string, req *resource_dto.UpdateResourceRequest) (*resource_dto.ResourceResponse, *app_errors.AppError) {
	resource, err := s.repo.GetResourceByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	// Nur gesetzte Felder übernehmen (Patch-Semantik).
	if req.Name != nil {
		resource.Name = *req.Name
	}
	if req.Department != nil {
		resource.Department = *req.Department
	}
	if req.Role != nil {
		resource.Role = *req.Role
	}
	if req.WeeklyCapacityHours != nil {
		resource.WeeklyCapacityHours = *req.WeeklyCapacityHours
	}
	if req.IsActive != nil {
		resource.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateResource(ctx, resource); err != nil {
		return nil, err
	}

	return toResourceResponse(resource), nil
}

// DeleteResource löscht hart, solange keine Allokationen existieren.
// Ressourcen mit Planungshistorie werden nur deaktiviert, damit alte
// Heatmaps und Reports referenzierbar bleiben.
func (s *ResourceService) DeleteResource(ctx context.Context, resourceID string) (*resource_dto.DeleteResourceResponse, *app_errors.AppError) {
	if _, err := s.repo.GetResourceByID(ctx, resourceID); err != nil {
		return nil, err
	}

	hasAllocations, err := s.repo.HasAllocations(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	if hasAllocations {
		if err := s.repo.DeactivateResource(ctx, resourceID); err != nil {
			return nil, err
		}
		return &resource_dto.DeleteResourceResponse{ID: resourceID, SoftDeleted: true}, nil
	}

	if err := s.repo.DeleteResource(ctx, resourceID); err != nil {
		return nil, err
	}
	return &resource_dto.DeleteResourceResponse{ID: resourceID, SoftDeleted: false}, nil
}

func toResourceResponse(r *entity.ResourceEntity) *resource_dto.ResourceResponse {
	return &resource_dto.ResourceResponse{
		ID:                  r.ID,
		Name:                r.Name,
		Email:               r.Email,
		Department:          r.Department,
		Role:                r.Role,
		WeeklyCapacityHours: r.WeeklyCapacityHours,
		IsActive:            r.IsActive,
		CreatedAt:           r.CreatedAt,
	}
}
