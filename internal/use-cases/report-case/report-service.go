package report_case

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/config"
	report_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/report-dto"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/Xenn-00/kapazitaets-meister/internal/queue"
	planning_repo "github.com/Xenn-00/kapazitaets-meister/internal/repo/planning-repo"
	dashboard_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/dashboard-case"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	worker_task "github.com/Xenn-00/kapazitaets-meister/internal/worker/tasks"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type ReportService struct {
	repo            planning_repo.PlanningRepoContract
	taskQueue       queue.TaskQueueClient
	nonProjectHours float64
	now             func() time.Time
}

func NewReportService(db *pgxpool.Pool, taskQueue queue.TaskQueueClient, cfg *config.AppConfig) ReportServiceContract {
	return &ReportService{
		repo:            planning_repo.NewPlanningRepo(db),
		taskQueue:       taskQueue,
		nonProjectHours: cfg.PLANNING.NonProjectHours,
		now:             time.Now,
	}
}

// BuildUtilizationCSV rendert die Auslastung pro Ressource und ISO-Woche im
// Zeitfenster als CSV: Plan-Stunden, Ist-Stunden und Auslastungsgrad.
func (s *ReportService) BuildUtilizationCSV(ctx context.Context, from, to time.Time) ([]byte, *app_errors.AppError) {
	if to.Before(from) {
		return nil, app_errors.NewValidationError([]app_errors.FieldError{
			{Field: "to", Reason: "before_from", MessageKey: "validation.range_inverted"},
		})
	}

	snapshot, err := s.repo.LoadSnapshot(ctx, from, to)
	if err != nil {
		return nil, err
	}

	weeks := weeksBetween(from, to)
	byResource := snapshot.AllocationsByResource()
	entriesByAllocation := snapshot.EntriesByAllocation()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"resource", "department", "week", "capacity_hours", "allocated_hours", "logged_hours", "utilization_pct"}
	if err := w.Write(header); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	for _, res := range snapshot.Resources {
		for _, week := range weeks {
			allocated := dashboard_case.AllocatedHoursForWeek(byResource[res.ID], week)
			util := dashboard_case.UtilizationPct(allocated, res.WeeklyCapacityHours, s.nonProjectHours)

			var logged float64
			for _, a := range byResource[res.ID] {
				for _, e := range entriesByAllocation[a.ID] {
					if utils.ISOWeekString(e.WeekStart) == week {
						logged += e.TotalHours()
					}
				}
			}

			record := []string{
				res.Name,
				res.Department,
				week,
				formatHours(dashboard_case.EffectiveCapacity(res.WeeklyCapacityHours, s.nonProjectHours)),
				formatHours(allocated),
				formatHours(logged),
				fmt.Sprintf("%.1f", util),
			}
			if err := w.Write(record); err != nil {
				return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return buf.Bytes(), nil
}

// EnqueueWeeklyReport reiht den Report der VORWOCHE ein; der Versand erfolgt
// asynchron per E-Mail, die HTTP-Antwort bestätigt nur die Einreihung.
func (s *ReportService) EnqueueWeeklyReport(ctx context.Context, email string) (*report_dto.WeeklyReportResponse, *app_errors.AppError) {
	week := utils.ISOWeekString(s.now().AddDate(0, 0, -7))

	payload := &worker_task.BuildWeeklyReportPayload{
		Week:  week,
		Email: email,
	}
	if err := s.taskQueue.EnqueueBuildWeeklyReport(payload); err != nil {
		log.Error().Err(err).Msg("Fehler beim Einreihen des Wochenreports")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &report_dto.WeeklyReportResponse{
		Enqueued: true,
		Week:     week,
		Email:    email,
	}, nil
}

// EnqueueAlertDigest stößt den Kapazitäts-Digest manuell an, zusätzlich zum
// montäglichen Cron. Der Worker rechnet die Alerts beim Ausführen selbst aus.
func (s *ReportService) EnqueueAlertDigest(ctx context.Context) (*report_dto.AlertDigestResponse, *app_errors.AppError) {
	if err := s.taskQueue.EnqueueSendAlertDigest(); err != nil {
		log.Error().Err(err).Msg("Fehler beim Einreihen des Alert-Digests")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return &report_dto.AlertDigestResponse{Enqueued: true}, nil
}

func weeksBetween(from, to time.Time) []string {
	n := int(to.Sub(from).Hours()/(24*7)) + 1
	return utils.WeeksFrom(from, n)
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 1, 64)
}
