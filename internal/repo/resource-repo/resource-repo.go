package resource_repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceRepo struct {
	db *pgxpool.Pool
}

func NewResourceRepo(db *pgxpool.Pool) ResourceRepoContract {
	return &ResourceRepo{db: db}
}

func (r *ResourceRepo) InsertResource(ctx context.Context, model *entity.ResourceEntity) (*entity.ResourceEntity, *app_errors.AppError) {
	cols := []string{"id", "name", "email", "department", "role", "weekly_capacity_hours", "is_active"}
	vals := []any{model.ID, model.Name, model.Email, model.Department, model.Role, model.WeeklyCapacityHours, true}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`
	INSERT INTO resources (%s)
	VALUES (%s)
	RETURNING id, name, email, department, role, weekly_capacity_hours, is_active, created_at;
	`, strings.Join(cols, ","), strings.Join(placeholders, ","))

	var res entity.ResourceEntity
	if err := r.db.QueryRow(ctx, query, vals...).Scan(&res.ID, &res.Name, &res.Email, &res.Department, &res.Role, &res.WeeklyCapacityHours, &res.IsActive, &res.CreatedAt); err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return &res, nil
}

func (r *ResourceRepo) ListResources(ctx context.Context, filter entity.ResourceListFilter) ([]entity.ResourceEntity, int, *app_errors.AppError) {
	query := `
	SELECT id, name, email, department, role, weekly_capacity_hours, is_active, created_at, updated_at,
	       COUNT(*) OVER() AS total
	FROM resources
	WHERE ($1::text IS NULL OR department = $1)
	  AND ($2::boolean IS NULL OR is_active = $2)
	ORDER BY name
	LIMIT $3 OFFSET $4;
	`

	rows, err := r.db.Query(ctx, query, filter.Department, filter.Active, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var resources []entity.ResourceEntity
	var total int
	for rows.Next() {
		var res entity.ResourceEntity
		if err := rows.Scan(&res.ID, &res.Name, &res.Email, &res.Department, &res.Role, &res.WeeklyCapacityHours, &res.IsActive, &res.CreatedAt, &res.UpdatedAt, &total); err != nil {
			return nil, 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		resources = append(resources, res)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return resources, total, nil
}

func (r *ResourceRepo) GetResourceByID(ctx context.Context, resourceID string) (*entity.ResourceEntity, *app_errors.AppError) {
	query := `
	SELECT id, name, email, department, role, weekly_capacity_hours, is_active, created_at, updated_at
	FROM resources
	WHERE id = $1;
	`

	var res entity.ResourceEntity
	if err := r.db.QueryRow(ctx, query, resourceID).Scan(&res.ID, &res.Name, &res.Email, &res.Department, &res.Role, &res.WeeklyCapacityHours, &res.IsActive, &res.CreatedAt, &res.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "resource_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &res, nil
}

func (r *ResourceRepo) UpdateResource(ctx context.Context, model *entity.ResourceEntity) *app_errors.AppError {
	query := `
	UPDATE resources
	SET name = $2, department = $3, role = $4, weekly_capacity_hours = $5, is_active = $6, updated_at = now()
	WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, model.ID, model.Name, model.Department, model.Role, model.WeeklyCapacityHours, model.IsActive)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "resource_not_found", nil)
	}
	return nil
}

func (r *ResourceRepo) HasAllocations(ctx context.Context, resourceID string) (bool, *app_errors.AppError) {
	query := `
	SELECT EXISTS (
		SELECT 1 FROM allocations WHERE resource_id = $1
	);
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, resourceID).Scan(&exists); err != nil {
		return false, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return exists, nil
}

func (r *ResourceRepo) DeactivateResource(ctx context.Context, resourceID string) *app_errors.AppError {
	query := `
	UPDATE resources SET is_active = false, updated_at = now() WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, resourceID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "resource_not_found", nil)
	}
	return nil
}

func (r *ResourceRepo) DeleteResource(ctx context.Context, resourceID string) *app_errors.AppError {
	query := `
	DELETE FROM resources WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, resourceID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "resource_not_found", nil)
	}
	return nil
}
