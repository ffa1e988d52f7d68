package queue

import (
	worker_task "github.com/Xenn-00/kapazitaets-meister/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// TaskQueueClient abstrahiert das Enqueuen, damit Services im Test einen
// Mock statt einer echten asynq-Verbindung bekommen.
type TaskQueueClient interface {
	EnqueueBuildWeeklyReport(payload *worker_task.BuildWeeklyReportPayload) error
	EnqueueSendAlertDigest() error
}

type TaskQueue struct {
	client *asynq.Client
}

func NewTaskQueue(redis *redis.Client) *TaskQueue {
	return &TaskQueue{
		client: asynq.NewClientFromRedisClient(redis),
	}
}

func (q *TaskQueue) EnqueueBuildWeeklyReport(payload *worker_task.BuildWeeklyReportPayload) error {
	log.Info().Str("week", payload.Week).Msg("Wochenreport wird eingereiht")
	p, _ := json.Marshal(payload)
	task := asynq.NewTask(worker_task.TaskBuildWeeklyReport, p, asynq.Queue("low"), asynq.MaxRetry(worker_task.MaxRetries))

	_, err := q.client.Enqueue(task)
	return err
}

// EnqueueSendAlertDigest stößt den Alert-Digest außerhalb des Wochenplans an,
// etwa nach größeren Umplanungen. Der Task braucht keine Payload: der Worker
// rechnet die Alerts zum Ausführungszeitpunkt selbst aus.
func (q *TaskQueue) EnqueueSendAlertDigest() error {
	log.Info().Msg("Alert-Digest wird eingereiht")
	task := asynq.NewTask(worker_task.TaskSendAlertDigest, nil, asynq.Queue("email"), asynq.MaxRetry(worker_task.MaxRetries))

	_, err := q.client.Enqueue(task)
	return err
}
