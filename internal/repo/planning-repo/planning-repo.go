package planning_repo

import (
	"context"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlanningRepo struct {
	db *pgxpool.Pool
}

func NewPlanningRepo(db *pgxpool.Pool) PlanningRepoContract {
	return &PlanningRepo{db: db}
}

// LoadSnapshot lädt aktive Ressourcen, deren aktive Allokationen im Zeitfenster
// und die zugehörigen Zeiteinträge.
func (r *PlanningRepo) LoadSnapshot(ctx context.Context, from, to time.Time) (*entity.PlanningSnapshot, *app_errors.AppError) {
	snapshot := &entity.PlanningSnapshot{}

	resourceQuery := `
	SELECT id, name, email, department, role, weekly_capacity_hours, is_active, created_at, updated_at
	FROM resources
	WHERE is_active = true
	ORDER BY name;
	`

	rows, err := r.db.Query(ctx, resourceQuery)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	for rows.Next() {
		var res entity.ResourceEntity
		if err := rows.Scan(&res.ID, &res.Name, &res.Email, &res.Department, &res.Role, &res.WeeklyCapacityHours, &res.IsActive, &res.CreatedAt, &res.UpdatedAt); err != nil {
			rows.Close()
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		snapshot.Resources = append(snapshot.Resources, res)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	allocationQuery := `
	SELECT id, resource_id, project_id, allocated_hours, weekly_allocations, start_date, end_date, role, status, created_at, updated_at
	FROM allocations
	WHERE status = 'Active'
	  AND start_date <= $2
	  AND (end_date IS NULL OR end_date >= $1);
	`

	rows, err = r.db.Query(ctx, allocationQuery, from, to)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	for rows.Next() {
		var a entity.AllocationEntity
		var weekly []byte
		if err := rows.Scan(&a.ID, &a.ResourceID, &a.ProjectID, &a.AllocatedHours, &weekly, &a.StartDate, &a.EndDate, &a.Role, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			rows.Close()
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		if len(weekly) > 0 {
			if err := json.Unmarshal(weekly, &a.WeeklyAllocations); err != nil {
				rows.Close()
				return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
			}
		}
		snapshot.Allocations = append(snapshot.Allocations, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	entryQuery := `
	SELECT te.id, te.allocation_id, te.week_start, te.monday, te.tuesday, te.wednesday, te.thursday,
	       te.friday, te.saturday, te.sunday, te.created_at, te.updated_at
	FROM time_entries te
	JOIN allocations a ON a.id = te.allocation_id
	WHERE a.status = 'Active' AND te.week_start >= $1 AND te.week_start <= $2;
	`

	rows, err = r.db.Query(ctx, entryQuery, from, to)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	for rows.Next() {
		var e entity.TimeEntryEntity
		if err := rows.Scan(&e.ID, &e.AllocationID, &e.WeekStart, &e.Monday, &e.Tuesday, &e.Wednesday, &e.Thursday, &e.Friday, &e.Saturday, &e.Sunday, &e.CreatedAt, &e.UpdatedAt); err != nil {
			rows.Close()
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		snapshot.TimeEntries = append(snapshot.TimeEntries, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return snapshot, nil
}

func (r *PlanningRepo) CountActiveProjects(ctx context.Context) (int, *app_errors.AppError) {
	query := `SELECT COUNT(*) FROM projects WHERE status = 'Active';`

	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return count, nil
}

func (r *PlanningRepo) ListProjectsWithNames(ctx context.Context) (map[string]string, *app_errors.AppError) {
	query := `SELECT id, name FROM projects;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		names[id] = name
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return names, nil
}
