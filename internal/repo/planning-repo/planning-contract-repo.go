package planning_repo

import (
	"context"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
)

// PlanningRepoContract lädt die Rohdaten der Dashboard-Rechnung in einem
// Rutsch; alle Kennzahlen entstehen danach in-memory im Use-Case.
type PlanningRepoContract interface {
	LoadSnapshot(ctx context.Context, from, to time.Time) (*entity.PlanningSnapshot, *app_errors.AppError)
	CountActiveProjects(ctx context.Context) (int, *app_errors.AppError)
	ListProjectsWithNames(ctx context.Context) (map[string]string, *app_errors.AppError)
}
