package timeentry_dto

import "time"

type TimeEntryResponse struct {
	ID           string    `json:"id"`
	AllocationID string    `json:"allocation_id"`
	WeekStart    time.Time `json:"week_start"`
	Week         string    `json:"week"`
	Monday       float64   `json:"monday"`
	Tuesday      float64   `json:"tuesday"`
	Wednesday    float64   `json:"wednesday"`
	Thursday     float64   `json:"thursday"`
	Friday       float64   `json:"friday"`
	Saturday     float64   `json:"saturday"`
	Sunday       float64   `json:"sunday"`
	TotalHours   float64   `json:"total_hours"`
}
