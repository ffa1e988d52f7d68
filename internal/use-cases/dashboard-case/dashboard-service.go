package dashboard_case

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/config"
	dashboard_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/dashboard-dto"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	planning_repo "github.com/Xenn-00/kapazitaets-meister/internal/repo/planning-repo"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type DashboardService struct {
	redis           *redis.Client
	repo            planning_repo.PlanningRepoContract
	nonProjectHours float64
	heatmapWeeks    int
	now             func() time.Time
}

func NewDashboardService(db *pgxpool.Pool, redis *redis.Client, cfg *config.AppConfig) DashboardServiceContract {
	return &DashboardService{
		redis:           redis,
		repo:            planning_repo.NewPlanningRepo(db),
		nonProjectHours: cfg.PLANNING.NonProjectHours,
		heatmapWeeks:    cfg.PLANNING.HeatmapWeeks,
		now:             time.Now,
	}
}

// currentWeekWindow liefert Montag und Sonntag der laufenden ISO-Woche.
func (s *DashboardService) currentWeekWindow() (time.Time, time.Time, string) {
	week := utils.ISOWeekString(s.now())
	start, _ := utils.WeekStart(week)
	return start, start.AddDate(0, 0, 6), week
}

func (s *DashboardService) GetKpis(ctx context.Context) (*dashboard_dto.KpisResponse, *app_errors.AppError) {
	from, to, week := s.currentWeekWindow()

	// Kurzer Cache, die KPI-Kacheln werden bei jedem Dashboard-Aufruf geladen.
	cacheKey := "dashboard:kpis:" + week
	if s.redis != nil {
		if cached, _ := utils.GetCacheData[dashboard_dto.KpisResponse](ctx, s.redis, cacheKey); cached != nil {
			return cached, nil
		}
	}

	snapshot, err := s.repo.LoadSnapshot(ctx, from, to)
	if err != nil {
		log.Error().Err(err.Err).Msg("KPI-Snapshot fehlgeschlagen, liefere genullte Antwort")
		return &dashboard_dto.KpisResponse{Week: week, Degraded: true}, nil
	}

	activeProjects, err := s.repo.CountActiveProjects(ctx)
	if err != nil {
		log.Error().Err(err.Err).Msg("Projektzählung fehlgeschlagen, liefere genullte Antwort")
		return &dashboard_dto.KpisResponse{Week: week, Degraded: true}, nil
	}

	byResource := snapshot.AllocationsByResource()

	resp := &dashboard_dto.KpisResponse{
		Week:            week,
		ActiveResources: len(snapshot.Resources),
		ActiveProjects:  activeProjects,
	}

	var utilSum float64
	for _, res := range snapshot.Resources {
		allocated := AllocatedHoursForWeek(byResource[res.ID], week)
		util := UtilizationPct(allocated, res.WeeklyCapacityHours, s.nonProjectHours)

		resp.CapacityHours += EffectiveCapacity(res.WeeklyCapacityHours, s.nonProjectHours)
		resp.DemandHours += allocated
		utilSum += util
		if util >= 100 {
			resp.ConflictCount++
		}
	}
	if len(snapshot.Resources) > 0 {
		resp.AvgUtilizationPct = utilSum / float64(len(snapshot.Resources))
	}

	if s.redis != nil {
		_ = utils.SetCacheData(ctx, s.redis, cacheKey, resp, time.Minute)
	}

	return resp, nil
}

func (s *DashboardService) GetAlerts(ctx context.Context) (*dashboard_dto.AlertsResponse, *app_errors.AppError) {
	from, to, week := s.currentWeekWindow()

	snapshot, err := s.repo.LoadSnapshot(ctx, from, to)
	if err != nil {
		log.Error().Err(err.Err).Msg("Alert-Snapshot fehlgeschlagen, liefere genullte Antwort")
		return &dashboard_dto.AlertsResponse{Week: week, Alerts: []dashboard_dto.Alert{}, Degraded: true}, nil
	}

	return &dashboard_dto.AlertsResponse{
		Week:   week,
		Alerts: ComputeAlerts(snapshot, week, s.nonProjectHours),
	}, nil
}

// ComputeAlerts ist aus GetAlerts herausgezogen, damit der Worker den
// Alert-Digest über denselben Code rechnet wie das Dashboard.
func ComputeAlerts(snapshot *entity.PlanningSnapshot, week string, nonProjectHours float64) []dashboard_dto.Alert {
	byResource := snapshot.AllocationsByResource()

	alerts := make([]dashboard_dto.Alert, 0)
	for _, res := range snapshot.Resources {
		allocated := AllocatedHoursForWeek(byResource[res.ID], week)
		util := UtilizationPct(allocated, res.WeeklyCapacityHours, nonProjectHours)
		tier := SeverityFor(util)
		if tier == entity.TierOk {
			continue
		}

		alerts = append(alerts, dashboard_dto.Alert{
			ResourceID:     res.ID,
			ResourceName:   res.Name,
			Department:     res.Department,
			UtilizationPct: util,
			Severity:       string(tier),
			MessageKey:     "alerts." + strings.ToLower(string(tier)),
		})
	}
	return alerts
}

func (s *DashboardService) GetHeatmap(ctx context.Context, weeks int) (*dashboard_dto.HeatmapResponse, *app_errors.AppError) {
	if weeks <= 0 {
		weeks = s.heatmapWeeks
	}

	from, _, _ := s.currentWeekWindow()
	to := from.AddDate(0, 0, weeks*7-1)
	weekKeys := utils.WeeksFrom(from, weeks)

	snapshot, err := s.repo.LoadSnapshot(ctx, from, to)
	if err != nil {
		log.Error().Err(err.Err).Msg("Heatmap-Snapshot fehlgeschlagen, liefere genullte Antwort")
		return &dashboard_dto.HeatmapResponse{Weeks: weekKeys, Rows: []dashboard_dto.HeatmapRow{}, Degraded: true}, nil
	}

	byResource := snapshot.AllocationsByResource()

	rows := make([]dashboard_dto.HeatmapRow, 0, len(snapshot.Resources))
	for _, res := range snapshot.Resources {
		row := dashboard_dto.HeatmapRow{
			ResourceID:   res.ID,
			ResourceName: res.Name,
			Cells:        make([]dashboard_dto.HeatmapCell, 0, len(weekKeys)),
		}
		for _, wk := range weekKeys {
			allocated := AllocatedHoursForWeek(byResource[res.ID], wk)
			util := UtilizationPct(allocated, res.WeeklyCapacityHours, s.nonProjectHours)
			row.Cells = append(row.Cells, dashboard_dto.HeatmapCell{
				Week:           wk,
				AllocatedHours: allocated,
				UtilizationPct: util,
				Severity:       string(SeverityFor(util)),
			})
		}
		rows = append(rows, row)
	}

	return &dashboard_dto.HeatmapResponse{Weeks: weekKeys, Rows: rows}, nil
}

func (s *DashboardService) GetGamified(ctx context.Context) (*dashboard_dto.GamifiedResponse, *app_errors.AppError) {
	from, to, week := s.currentWeekWindow()

	snapshot, err := s.repo.LoadSnapshot(ctx, from, to)
	if err != nil {
		log.Error().Err(err.Err).Msg("Gamified-Snapshot fehlgeschlagen, liefere genullte Antwort")
		return &dashboard_dto.GamifiedResponse{Week: week, Scores: []dashboard_dto.GamifiedScore{}, Degraded: true}, nil
	}

	byResource := snapshot.AllocationsByResource()
	entriesByAllocation := snapshot.EntriesByAllocation()

	scores := make([]dashboard_dto.GamifiedScore, 0, len(snapshot.Resources))
	for _, res := range snapshot.Resources {
		allocated := AllocatedHoursForWeek(byResource[res.ID], week)
		util := UtilizationPct(allocated, res.WeeklyCapacityHours, s.nonProjectHours)

		var logged float64
		for _, a := range byResource[res.ID] {
			for _, e := range entriesByAllocation[a.ID] {
				if utils.ISOWeekString(e.WeekStart) == week {
					logged += e.TotalHours()
				}
			}
		}

		balance := BalancePoints(util)
		discipline := DisciplinePoints(logged, allocated)
		score := GamifiedScore(balance, discipline)

		scores = append(scores, dashboard_dto.GamifiedScore{
			ResourceID:       res.ID,
			ResourceName:     res.Name,
			BalancePoints:    balance,
			DisciplinePoints: discipline,
			Score:            score,
			Badge:            BadgeFor(score),
		})
	}

	return &dashboard_dto.GamifiedResponse{Week: week, Scores: scores}, nil
}

func (s *DashboardService) GetTrends(ctx context.Context, weeks int) (*dashboard_dto.TrendsResponse, *app_errors.AppError) {
	if weeks < 4 {
		weeks = 4
	}

	currentStart, currentEnd, _ := s.currentWeekWindow()
	from := currentStart.AddDate(0, 0, -(weeks-1)*7)
	weekKeys := utils.WeeksFrom(from, weeks)

	snapshot, err := s.repo.LoadSnapshot(ctx, from, currentEnd)
	if err != nil {
		log.Error().Err(err.Err).Msg("Trend-Snapshot fehlgeschlagen, liefere genullte Antwort")
		return &dashboard_dto.TrendsResponse{Weeks: weekKeys, Avg: make([]float64, len(weekKeys)), Degraded: true}, nil
	}

	byResource := snapshot.AllocationsByResource()

	avg := make([]float64, 0, len(weekKeys))
	for _, wk := range weekKeys {
		var sum float64
		for _, res := range snapshot.Resources {
			allocated := AllocatedHoursForWeek(byResource[res.ID], wk)
			sum += UtilizationPct(allocated, res.WeeklyCapacityHours, s.nonProjectHours)
		}
		if len(snapshot.Resources) > 0 {
			avg = append(avg, sum/float64(len(snapshot.Resources)))
		} else {
			avg = append(avg, 0)
		}
	}

	slope := TrendSlope(avg)
	current := 0.0
	if len(avg) > 0 {
		current = avg[len(avg)-1]
	}

	return &dashboard_dto.TrendsResponse{
		Weeks:          weekKeys,
		Avg:            avg,
		Slope:          slope,
		DaysToConflict: DaysToConflict(current, slope),
	}, nil
}

func (s *DashboardService) GetForecastAccuracy(ctx context.Context) (*dashboard_dto.ForecastAccuracyResponse, *app_errors.AppError) {
	// Genauigkeit über die letzten 12 Monate; älteres Plan/Ist-Material sagt
	// über die aktuelle Planungsgüte nichts mehr aus.
	to := s.now()
	from := to.AddDate(-1, 0, 0)

	snapshot, err := s.repo.LoadSnapshot(ctx, from, to)
	if err != nil {
		log.Error().Err(err.Err).Msg("Forecast-Snapshot fehlgeschlagen, liefere genullte Antwort")
		return &dashboard_dto.ForecastAccuracyResponse{Projects: []dashboard_dto.ProjectAccuracy{}, Degraded: true}, nil
	}

	names, err := s.repo.ListProjectsWithNames(ctx)
	if err != nil {
		log.Error().Err(err.Err).Msg("Projektnamen fehlgeschlagen, liefere genullte Antwort")
		return &dashboard_dto.ForecastAccuracyResponse{Projects: []dashboard_dto.ProjectAccuracy{}, Degraded: true}, nil
	}

	entriesByAllocation := snapshot.EntriesByAllocation()

	samplesByProject := make(map[string][]PlannedVsLogged)
	for _, a := range snapshot.Allocations {
		for _, e := range entriesByAllocation[a.ID] {
			week := utils.ISOWeekString(e.WeekStart)
			samplesByProject[a.ProjectID] = append(samplesByProject[a.ProjectID], PlannedVsLogged{
				Planned: a.HoursForWeek(week),
				Logged:  e.TotalHours(),
			})
		}
	}

	projects := make([]dashboard_dto.ProjectAccuracy, 0, len(samplesByProject))
	for projectID, samples := range samplesByProject {
		accuracy, count := AccuracyPct(samples)
		projects = append(projects, dashboard_dto.ProjectAccuracy{
			ProjectID:   projectID,
			ProjectName: names[projectID],
			AccuracyPct: accuracy,
			SampleCount: count,
		})
	}

	// Map-Iteration ist unsortiert; die Antwort soll stabil bleiben.
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].ProjectName != projects[j].ProjectName {
			return projects[i].ProjectName < projects[j].ProjectName
		}
		return projects[i].ProjectID < projects[j].ProjectID
	})

	return &dashboard_dto.ForecastAccuracyResponse{Projects: projects}, nil
}
