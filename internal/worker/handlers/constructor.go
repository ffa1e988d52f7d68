package worker_handler

import (
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/config"
	"github.com/Xenn-00/kapazitaets-meister/internal/mail"
	planning_repo "github.com/Xenn-00/kapazitaets-meister/internal/repo/planning-repo"
	project_repo "github.com/Xenn-00/kapazitaets-meister/internal/repo/project-repo"
	rbac_repo "github.com/Xenn-00/kapazitaets-meister/internal/repo/rbac-repo"
	report_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/report-case"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkerHandler struct {
	db              *pgxpool.Pool
	plr             planning_repo.PlanningRepoContract
	pr              project_repo.ProjectRepoContract
	rr              rbac_repo.RbacRepoContract
	reports         report_case.ReportServiceContract
	mailer          mail.Mailer
	nonProjectHours float64
	now             func() time.Time
}

func NewWorkerHandler(db *pgxpool.Pool, mailer mail.Mailer, reports report_case.ReportServiceContract, cfg *config.AppConfig) *WorkerHandler {
	return &WorkerHandler{
		db:              db,
		plr:             planning_repo.NewPlanningRepo(db),
		pr:              project_repo.NewProjectRepo(db),
		rr:              rbac_repo.NewRbacRepo(db),
		reports:         reports,
		mailer:          mailer,
		nonProjectHours: cfg.PLANNING.NonProjectHours,
		now:             time.Now,
	}
}
