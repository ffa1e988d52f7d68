package worker_handler

import (
	"context"

	dashboard_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/dashboard-dto"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	dashboard_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/dashboard-case"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// SendAlertDigest rechnet die Alerts der laufenden Woche und mailt die
// kritischen an alle Benutzer mit Dashboard-Berechtigung. Dieselbe Rechnung
// wie GET /dashboard/alerts, damit Mail und UI nie auseinanderlaufen.
func (wh *WorkerHandler) SendAlertDigest() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		now := wh.now()
		week := utils.ISOWeekString(now)

		from, err := utils.WeekStart(week)
		if err != nil {
			return err
		}
		to := from.AddDate(0, 0, 7)

		snapshot, appErr := wh.plr.LoadSnapshot(ctx, from, to)
		if appErr != nil {
			log.Error().Err(appErr.Err).Msg("Worker handler: Planungsdaten für Alert-Digest nicht ladbar")
			return appErr
		}

		alerts := dashboard_case.ComputeAlerts(snapshot, week, wh.nonProjectHours)

		// Nur die Eskalationsstufen gehören in die Mail, Info/Warning bleibt im Dashboard.
		critical := make([]dashboard_dto.Alert, 0, len(alerts))
		for _, a := range alerts {
			if a.Severity == string(entity.TierCritical) || a.Severity == string(entity.TierOverallocated) {
				critical = append(critical, a)
			}
		}
		if len(critical) == 0 {
			log.Info().Str("week", week).Msg("Worker handler: keine kritischen Alerts, Digest entfällt")
			return nil
		}

		recipients, appErr := wh.rr.ListUserEmailsWithPermission(ctx, "dashboard:view")
		if appErr != nil {
			log.Error().Err(appErr.Err).Msg("Worker handler: Empfänger für Alert-Digest nicht ladbar")
			return appErr
		}
		if len(recipients) == 0 {
			return nil
		}

		return wh.mailer.SendAlertDigest(recipients, week, critical)
	}
}
