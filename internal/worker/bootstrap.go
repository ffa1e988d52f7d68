package worker

import (
	"fmt"

	worker_handler "github.com/Xenn-00/kapazitaets-meister/internal/worker/handlers"
	worker_task "github.com/Xenn-00/kapazitaets-meister/internal/worker/tasks"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func RegisterWorkerHandlers(mux *asynq.ServeMux, h *worker_handler.WorkerHandler) {
	mux.HandleFunc(
		worker_task.TaskSendAlertDigest,
		h.SendAlertDigest(),
	)
	mux.HandleFunc(
		worker_task.TaskBuildWeeklyReport,
		h.BuildWeeklyReport(),
	)
	mux.HandleFunc(worker_task.TaskProjectStatusSweep, h.ProjectStatusSweep())
}

func RegisterCronJobs(s *asynq.Scheduler) error {
	jobs := []struct {
		spec  string
		task  *asynq.Task
		queue string
		desc  string
	}{
		{
			spec:  "0 7 * * MON",
			task:  asynq.NewTask(worker_task.TaskSendAlertDigest, nil),
			queue: "email",
			desc:  "send weekly capacity alert digest",
		},
		{
			spec:  "0 1 * * *",
			task:  asynq.NewTask(worker_task.TaskProjectStatusSweep, nil),
			queue: "low",
			desc:  "complete projects past their end date",
		},
	}

	for _, job := range jobs {
		if _, err := s.Register(job.spec, job.task, asynq.Queue(job.queue), asynq.MaxRetry(worker_task.MaxRetries)); err != nil {
			return fmt.Errorf("register %s failed: %w", job.desc, err)
		}
		log.Info().Msgf("scheduled: %s", job.desc)
	}

	return nil
}
