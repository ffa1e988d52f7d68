package dashboard_case

import (
	"context"

	dashboard_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/dashboard-dto"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
)

// DashboardServiceContract bündelt alle Lese-Aggregationen des Dashboards.
// Die Methoden geben nie einen Fehler an den Handler zurück: bei
// Datenbankausfall liefern sie die genullte Antwortform mit Degraded = true
// (graceful degradation, damit das Dashboard nie bricht).
type DashboardServiceContract interface {
	GetKpis(ctx context.Context) (*dashboard_dto.KpisResponse, *app_errors.AppError)
	GetAlerts(ctx context.Context) (*dashboard_dto.AlertsResponse, *app_errors.AppError)
	GetHeatmap(ctx context.Context, weeks int) (*dashboard_dto.HeatmapResponse, *app_errors.AppError)
	GetGamified(ctx context.Context) (*dashboard_dto.GamifiedResponse, *app_errors.AppError)
	GetTrends(ctx context.Context, weeks int) (*dashboard_dto.TrendsResponse, *app_errors.AppError)
	GetForecastAccuracy(ctx context.Context) (*dashboard_dto.ForecastAccuracyResponse, *app_errors.AppError)
}
