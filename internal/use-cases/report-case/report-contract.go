package report_case

import (
	"context"
	"time"

	report_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/report-dto"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
)

// ReportServiceContract bündelt den synchronen CSV-Export und den
// asynchronen Wochenreport.
type ReportServiceContract interface {
	BuildUtilizationCSV(ctx context.Context, from, to time.Time) ([]byte, *app_errors.AppError)
	EnqueueWeeklyReport(ctx context.Context, email string) (*report_dto.WeeklyReportResponse, *app_errors.AppError)
	EnqueueAlertDigest(ctx context.Context) (*report_dto.AlertDigestResponse, *app_errors.AppError)
}
