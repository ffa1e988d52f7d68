package worker_task

// MaxRetries gilt einheitlich für alle Hintergrund-Tasks; der Worker staffelt
// die Wiederholungen linear (n Sekunden).
const MaxRetries = 5

// Task-Typen der Hintergrundverarbeitung. Präfix = Queue-Zuordnung.
const TaskSendAlertDigest = "email:send_alert_digest"

const TaskBuildWeeklyReport = "low:build_weekly_report"

const TaskProjectStatusSweep = "low:project_status_sweep"

// BuildWeeklyReportPayload beauftragt den Wochenreport einer ISO-Woche und
// dessen Versand an den anfragenden Benutzer.
type BuildWeeklyReportPayload struct {
	Week  string `json:"week"`
	Email string `json:"email"`
}
