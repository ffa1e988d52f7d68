package worker_handler

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// ProjectStatusSweep schließt aktive Projekte ab, deren Enddatum verstrichen
// ist. Läuft nächtlich, damit KPI-Zähler und Alerts nur laufende Projekte sehen.
func (wh *WorkerHandler) ProjectStatusSweep() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		count, appErr := wh.pr.CompleteProjectsPastEnd(ctx, wh.now())
		if appErr != nil {
			log.Error().Err(appErr.Err).Msg("Worker handler: Projekt-Sweep fehlgeschlagen")
			return appErr
		}

		if count > 0 {
			log.Info().Int("completed", count).Msg("Worker handler: Projekte automatisch abgeschlossen")
		}
		return nil
	}
}
