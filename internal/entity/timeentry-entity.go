package entity

import "time"

// TimeEntryEntity erfasst die tatsächlich gebuchten Stunden einer Allokation
// pro Tag einer Woche (WeekStart = Montag).
type TimeEntryEntity struct {
	ID           string     `json:"id"`
	AllocationID string     `json:"allocation_id"`
	WeekStart    time.Time  `json:"week_start"`
	Monday       float64    `json:"monday"`
	Tuesday      float64    `json:"tuesday"`
	Wednesday    float64    `json:"wednesday"`
	Thursday     float64    `json:"thursday"`
	Friday       float64    `json:"friday"`
	Saturday     float64    `json:"saturday"`
	Sunday       float64    `json:"sunday"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// TotalHours summiert die sieben Tagesfelder.
func (t *TimeEntryEntity) TotalHours() float64 {
	return t.Monday + t.Tuesday + t.Wednesday + t.Thursday + t.Friday + t.Saturday + t.Sunday
}
