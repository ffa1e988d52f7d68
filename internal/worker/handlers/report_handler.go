package worker_handler

import (
	"context"

	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	worker_task "github.com/Xenn-00/kapazitaets-meister/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// BuildWeeklyReport baut den CSV-Report der angefragten ISO-Woche und mailt
// ihn an den Besteller.
func (wh *WorkerHandler) BuildWeeklyReport() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p worker_task.BuildWeeklyReportPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker handler: Report-Payload nicht lesbar")
			return err
		}

		from, err := utils.WeekStart(p.Week)
		if err != nil {
			log.Error().Err(err).Str("week", p.Week).Msg("Worker handler: ungültige Report-Woche")
			return err
		}
		to := from.AddDate(0, 0, 6)

		csvData, appErr := wh.reports.BuildUtilizationCSV(ctx, from, to)
		if appErr != nil {
			log.Error().Err(appErr.Err).Str("week", p.Week).Msg("Worker handler: CSV-Report fehlgeschlagen")
			return appErr
		}

		return wh.mailer.SendWeeklyReport(p.Email, p.Week, csvData)
	}
}
