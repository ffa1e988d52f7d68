package timeentry_repo

import (
	"context"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TimeEntryRepo struct {
	db *pgxpool.Pool
}

func NewTimeEntryRepo(db *pgxpool.Pool) TimeEntryRepoContract {
	return &TimeEntryRepo{db: db}
}

const timeEntryColumns = `id, allocation_id, week_start, monday, tuesday, wednesday, thursday, friday, saturday, sunday, created_at, updated_at`

func scanTimeEntry(row pgx.Row) (*entity.TimeEntryEntity, error) {
	var e entity.TimeEntryEntity
	if err := row.Scan(&e.ID, &e.AllocationID, &e.WeekStart, &e.Monday, &e.Tuesday, &e.Wednesday, &e.Thursday, &e.Friday, &e.Saturday, &e.Sunday, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpsertTimeEntry schreibt die Wochenbuchung; (allocation_id, week_start) ist
// eindeutig, ein zweiter Aufruf für dieselbe Woche ersetzt die Tagesfelder.
func (r *TimeEntryRepo) UpsertTimeEntry(ctx context.Context, model *entity.TimeEntryEntity) (*entity.TimeEntryEntity, *app_errors.AppError) {
	query := `
	INSERT INTO time_entries (id, allocation_id, week_start, monday, tuesday, wednesday, thursday, friday, saturday, sunday)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (allocation_id, week_start) DO UPDATE
	SET monday = EXCLUDED.monday, tuesday = EXCLUDED.tuesday, wednesday = EXCLUDED.wednesday,
	    thursday = EXCLUDED.thursday, friday = EXCLUDED.friday, saturday = EXCLUDED.saturday,
	    sunday = EXCLUDED.sunday, updated_at = now()
	RETURNING ` + timeEntryColumns + `;
	`

	e, err := scanTimeEntry(r.db.QueryRow(ctx, query, model.ID, model.AllocationID, model.WeekStart,
		model.Monday, model.Tuesday, model.Wednesday, model.Thursday, model.Friday, model.Saturday, model.Sunday))
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return e, nil
}

func (r *TimeEntryRepo) ListByAllocation(ctx context.Context, allocationID string) ([]entity.TimeEntryEntity, *app_errors.AppError) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE allocation_id = $1 ORDER BY week_start;`

	rows, err := r.db.Query(ctx, query, allocationID)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	return collect(rows)
}

func (r *TimeEntryRepo) ListByResourceRange(ctx context.Context, resourceID string, from, to time.Time) ([]entity.TimeEntryEntity, *app_errors.AppError) {
	query := `
	SELECT te.id, te.allocation_id, te.week_start, te.monday, te.tuesday, te.wednesday, te.thursday,
	       te.friday, te.saturday, te.sunday, te.created_at, te.updated_at
	FROM time_entries te
	JOIN allocations a ON a.id = te.allocation_id
	WHERE a.resource_id = $1 AND te.week_start >= $2 AND te.week_start <= $3
	ORDER BY te.week_start;
	`

	rows, err := r.db.Query(ctx, query, resourceID, from, to)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	return collect(rows)
}

func collect(rows pgx.Rows) ([]entity.TimeEntryEntity, *app_errors.AppError) {
	var entries []entity.TimeEntryEntity
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		entries = append(entries, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return entries, nil
}
