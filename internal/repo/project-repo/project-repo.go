package project_repo

import (
	"context"
	"errors"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/abstraction/tx"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepo(db *pgxpool.Pool) ProjectRepoContract {
	return &ProjectRepo{db: db}
}

func (r *ProjectRepo) InsertProject(ctx context.Context, model *entity.ProjectEntity) (*entity.ProjectEntity, *app_errors.AppError) {
	query := `
	INSERT INTO projects (id, name, status, priority, start_date, end_date, estimated_hours)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, name, status, priority, start_date, end_date, estimated_hours, created_at;
	`

	var p entity.ProjectEntity
	if err := r.db.QueryRow(ctx, query, model.ID, model.Name, model.Status, model.Priority, model.StartDate, model.EndDate, model.EstimatedHours).
		Scan(&p.ID, &p.Name, &p.Status, &p.Priority, &p.StartDate, &p.EndDate, &p.EstimatedHours, &p.CreatedAt); err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return &p, nil
}

func (r *ProjectRepo) ListProjects(ctx context.Context, filter entity.ProjectListFilter) ([]entity.ProjectEntity, int, *app_errors.AppError) {
	query := `
	SELECT id, name, status, priority, start_date, end_date, estimated_hours, created_at, updated_at,
	       COUNT(*) OVER() AS total
	FROM projects
	WHERE ($1::text IS NULL OR status = $1)
	  AND ($2::text IS NULL OR priority = $2)
	ORDER BY created_at DESC
	LIMIT $3 OFFSET $4;
	`

	rows, err := r.db.Query(ctx, query, filter.Status, filter.Priority, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var projects []entity.ProjectEntity
	var total int
	for rows.Next() {
		var p entity.ProjectEntity
		if err := rows.Scan(&p.ID, &p.Name, &p.Status, &p.Priority, &p.StartDate, &p.EndDate, &p.EstimatedHours, &p.CreatedAt, &p.UpdatedAt, &total); err != nil {
			return nil, 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return projects, total, nil
}

func (r *ProjectRepo) GetProjectByID(ctx context.Context, projectID string) (*entity.ProjectEntity, *app_errors.AppError) {
	query := `
	SELECT id, name, status, priority, start_date, end_date, estimated_hours, created_at, updated_at
	FROM projects
	WHERE id = $1;
	`

	var p entity.ProjectEntity
	if err := r.db.QueryRow(ctx, query, projectID).Scan(&p.ID, &p.Name, &p.Status, &p.Priority, &p.StartDate, &p.EndDate, &p.EstimatedHours, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "project_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &p, nil
}

// GetProjectSums liefert die über alle Allokationen geplanten Stunden und die
// tatsächlich gebuchten Stunden eines Projekts.
func (r *ProjectRepo) GetProjectSums(ctx context.Context, projectID string) (float64, float64, *app_errors.AppError) {
	query := `
	SELECT
		COALESCE(SUM(a.allocated_hours), 0),
		COALESCE(SUM(te.monday + te.tuesday + te.wednesday + te.thursday + te.friday + te.saturday + te.sunday), 0)
	FROM allocations a
	LEFT JOIN time_entries te ON te.allocation_id = a.id
	WHERE a.project_id = $1;
	`

	var allocated, logged float64
	if err := r.db.QueryRow(ctx, query, projectID).Scan(&allocated, &logged); err != nil {
		return 0, 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return allocated, logged, nil
}

func (r *ProjectRepo) UpdateProject(ctx context.Context, model *entity.ProjectEntity) *app_errors.AppError {
	query := `
	UPDATE projects
	SET name = $2, status = $3, priority = $4, start_date = $5, end_date = $6, estimated_hours = $7, updated_at = now()
	WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, model.ID, model.Name, model.Status, model.Priority, model.StartDate, model.EndDate, model.EstimatedHours)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "project_not_found", nil)
	}
	return nil
}

func (r *ProjectRepo) CancelProject(ctx context.Context, t tx.Tx, projectID string) *app_errors.AppError {
	pgxTx, ok := tx.PgxTxFrom(t)
	if !ok {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)
	}

	query := `
	UPDATE projects SET status = 'Cancelled', updated_at = now() WHERE id = $1;
	`

	tag, err := pgxTx.Exec(ctx, query, projectID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "project_not_found", nil)
	}
	return nil
}

// CompleteProjectsPastEnd setzt aktive Projekte, deren Enddatum vor dem
// Stichtag liegt, auf 'Completed'. Projekte mit noch aktiven Zuteilungen
// bleiben unberührt. Läuft als nächtlicher Sweep im Worker.
func (r *ProjectRepo) CompleteProjectsPastEnd(ctx context.Context, cutoff time.Time) (int, *app_errors.AppError) {
	query := `
	UPDATE projects p SET status = 'Completed', updated_at = now()
	WHERE p.status = 'Active' AND p.end_date < $1
	  AND NOT EXISTS (
	    SELECT 1 FROM allocations a
	    WHERE a.project_id = p.id AND a.status = 'Active'
	  );
	`

	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, app_errors.MapPgxError(err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *ProjectRepo) CancelActiveAllocations(ctx context.Context, t tx.Tx, projectID string) (int, *app_errors.AppError) {
	pgxTx, ok := tx.PgxTxFrom(t)
	if !ok {
		return 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)
	}

	query := `
	UPDATE allocations SET status = 'Cancelled', updated_at = now()
	WHERE project_id = $1 AND status = 'Active';
	`

	tag, err := pgxTx.Exec(ctx, query, projectID)
	if err != nil {
		return 0, app_errors.MapPgxError(err)
	}
	return int(tag.RowsAffected()), nil
}
