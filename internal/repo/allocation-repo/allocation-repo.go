package allocation_repo

import (
	"context"
	"errors"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AllocationRepo struct {
	db *pgxpool.Pool
}

func NewAllocationRepo(db *pgxpool.Pool) AllocationRepoContract {
	return &AllocationRepo{db: db}
}

const allocationColumns = `id, resource_id, project_id, allocated_hours, weekly_allocations, start_date, end_date, role, status, created_at, updated_at`

func scanAllocation(row pgx.Row) (*entity.AllocationEntity, error) {
	var a entity.AllocationEntity
	var weekly []byte
	if err := row.Scan(&a.ID, &a.ResourceID, &a.ProjectID, &a.AllocatedHours, &weekly, &a.StartDate, &a.EndDate, &a.Role, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	if len(weekly) > 0 {
		if err := json.Unmarshal(weekly, &a.WeeklyAllocations); err != nil {
			return nil, err
		}
	}
	return &a, nil
}

func (r *AllocationRepo) InsertAllocation(ctx context.Context, model *entity.AllocationEntity) (*entity.AllocationEntity, *app_errors.AppError) {
	weekly, jsonErr := json.Marshal(model.WeeklyAllocations)
	if jsonErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", jsonErr)
	}

	query := `
	INSERT INTO allocations (id, resource_id, project_id, allocated_hours, weekly_allocations, start_date, end_date, role, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING ` + allocationColumns + `;
	`

	a, err := scanAllocation(r.db.QueryRow(ctx, query, model.ID, model.ResourceID, model.ProjectID, model.AllocatedHours, weekly, model.StartDate, model.EndDate, model.Role, model.Status))
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return a, nil
}

func (r *AllocationRepo) GetAllocationByID(ctx context.Context, allocationID string) (*entity.AllocationEntity, *app_errors.AppError) {
	query := `SELECT ` + allocationColumns + ` FROM allocations WHERE id = $1;`

	a, err := scanAllocation(r.db.QueryRow(ctx, query, allocationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "allocation_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return a, nil
}

func (r *AllocationRepo) ListByResource(ctx context.Context, resourceID string) ([]entity.AllocationEntity, *app_errors.AppError) {
	query := `SELECT ` + allocationColumns + ` FROM allocations WHERE resource_id = $1 ORDER BY start_date DESC;`
	return r.list(ctx, query, resourceID)
}

func (r *AllocationRepo) ListByProject(ctx context.Context, projectID string) ([]entity.AllocationEntity, *app_errors.AppError) {
	query := `SELECT ` + allocationColumns + ` FROM allocations WHERE project_id = $1 ORDER BY start_date DESC;`
	return r.list(ctx, query, projectID)
}

func (r *AllocationRepo) ListActiveByResource(ctx context.Context, resourceID string) ([]entity.AllocationEntity, *app_errors.AppError) {
	query := `SELECT ` + allocationColumns + ` FROM allocations WHERE resource_id = $1 AND status = 'Active' ORDER BY start_date DESC;`
	return r.list(ctx, query, resourceID)
}

func (r *AllocationRepo) list(ctx context.Context, query string, arg any) ([]entity.AllocationEntity, *app_errors.AppError) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var allocations []entity.AllocationEntity
	for rows.Next() {
		a, err := scanAllocation(rows)
		if err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		allocations = append(allocations, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return allocations, nil
}

func (r *AllocationRepo) UpdateAllocation(ctx context.Context, model *entity.AllocationEntity) *app_errors.AppError {
	weekly, jsonErr := json.Marshal(model.WeeklyAllocations)
	if jsonErr != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", jsonErr)
	}

	query := `
	UPDATE allocations
	SET allocated_hours = $2, weekly_allocations = $3, start_date = $4, end_date = $5, status = $6, updated_at = now()
	WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, model.ID, model.AllocatedHours, weekly, model.StartDate, model.EndDate, model.Status)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "allocation_not_found", nil)
	}
	return nil
}

// SetWeekOverride setzt einen einzelnen ISO-Wochen-Override im jsonb-Feld.
func (r *AllocationRepo) SetWeekOverride(ctx context.Context, allocationID, isoWeek string, hours float64) *app_errors.AppError {
	query := `
	UPDATE allocations
	SET weekly_allocations = jsonb_set(COALESCE(weekly_allocations, '{}'::jsonb), ARRAY[$2], to_jsonb($3::numeric)),
	    updated_at = now()
	WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, allocationID, isoWeek, hours)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "allocation_not_found", nil)
	}
	return nil
}

func (r *AllocationRepo) CancelAllocation(ctx context.Context, allocationID string) *app_errors.AppError {
	query := `
	UPDATE allocations SET status = 'Cancelled', updated_at = now() WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, allocationID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "allocation_not_found", nil)
	}
	return nil
}
