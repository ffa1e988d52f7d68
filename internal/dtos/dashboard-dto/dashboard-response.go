package dashboard_dto

// Antwortformen der Dashboard-Aggregationen. Jede Form hat einen definierten
// Nullwert, der bei Datenbankfehlern ausgeliefert wird (graceful degradation),
// damit das Dashboard nie mit einem 5xx bricht.

type KpisResponse struct {
	Week              string  `json:"week"`
	ActiveResources   int     `json:"active_resources"`
	ActiveProjects    int     `json:"active_projects"`
	AvgUtilizationPct float64 `json:"avg_utilization_pct"`
	ConflictCount     int     `json:"conflict_count"`
	CapacityHours     float64 `json:"capacity_hours"`
	DemandHours       float64 `json:"demand_hours"`
	Degraded          bool    `json:"degraded,omitempty"`
}

type AlertsResponse struct {
	Week     string  `json:"week"`
	Alerts   []Alert `json:"alerts"`
	Degraded bool    `json:"degraded,omitempty"`
}

type Alert struct {
	ResourceID     string  `json:"resource_id"`
	ResourceName   string  `json:"resource_name"`
	Department     string  `json:"department"`
	UtilizationPct float64 `json:"utilization_pct"`
	Severity       string  `json:"severity"`
	MessageKey     string  `json:"message_key"`
}

type HeatmapResponse struct {
	Weeks    []string     `json:"weeks"`
	Rows     []HeatmapRow `json:"rows"`
	Degraded bool         `json:"degraded,omitempty"`
}

type HeatmapRow struct {
	ResourceID   string        `json:"resource_id"`
	ResourceName string        `json:"resource_name"`
	Cells        []HeatmapCell `json:"cells"`
}

type HeatmapCell struct {
	Week           string  `json:"week"`
	AllocatedHours float64 `json:"allocated_hours"`
	UtilizationPct float64 `json:"utilization_pct"`
	Severity       string  `json:"severity"`
}

type GamifiedResponse struct {
	Week     string          `json:"week"`
	Scores   []GamifiedScore `json:"scores"`
	Degraded bool            `json:"degraded,omitempty"`
}

type GamifiedScore struct {
	ResourceID       string  `json:"resource_id"`
	ResourceName     string  `json:"resource_name"`
	BalancePoints    float64 `json:"balance_points"`
	DisciplinePoints float64 `json:"discipline_points"`
	Score            int     `json:"score"`
	Badge            string  `json:"badge"`
}

type TrendsResponse struct {
	Weeks []string  `json:"weeks"`
	Avg   []float64 `json:"avg_utilization_pct"`
	// Slope ist die Kleinste-Quadrate-Steigung über die letzten 4 Punkte.
	Slope float64 `json:"slope"`
	// DaysToConflict ist nil, wenn die Steigung nicht positiv ist.
	DaysToConflict *int `json:"days_to_conflict,omitempty"`
	Degraded       bool `json:"degraded,omitempty"`
}

type ForecastAccuracyResponse struct {
	Projects []ProjectAccuracy `json:"projects"`
	Degraded bool              `json:"degraded,omitempty"`
}

type ProjectAccuracy struct {
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`
	// AccuracyPct ist nil, wenn keine Allokations-Woche einen Zeiteintrag hat.
	AccuracyPct *float64 `json:"accuracy_pct,omitempty"`
	SampleCount int      `json:"sample_count"`
}

type HeatmapQuery struct {
	Weeks int `query:"weeks,omitempty" validate:"omitempty,min=1,max=26"`
}

type TrendsQuery struct {
	Weeks int `query:"weeks,omitempty" validate:"omitempty,min=4,max=26"`
}
