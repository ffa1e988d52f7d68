package entity

import "time"

// AllocationEntity bindet eine Ressource mit Wochenstunden an ein Projekt.
// WeeklyAllocations (ISO-Woche "2026-W35" → Stunden) überschreibt AllocatedHours
// für die jeweilige Woche, wenn ein Eintrag vorhanden ist.
type AllocationEntity struct {
	ID                string             `json:"id"`
	ResourceID        string             `json:"resource_id"`
	ProjectID         string             `json:"project_id"`
	AllocatedHours    float64            `json:"allocated_hours"`
	WeeklyAllocations map[string]float64 `json:"weekly_allocations,omitempty"`
	StartDate         time.Time          `json:"start_date"`
	EndDate           *time.Time         `json:"end_date,omitempty"`
	Role              string             `json:"role"`
	Status            AllocationStatus   `json:"status"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         *time.Time         `json:"updated_at,omitempty"`
}

// HoursForWeek liefert die wirksamen Stunden der Allokation für eine ISO-Woche.
func (a *AllocationEntity) HoursForWeek(isoWeek string) float64 {
	if h, ok := a.WeeklyAllocations[isoWeek]; ok {
		return h
	}
	return a.AllocatedHours
}

type AllocationStatus string

const (
	AllocationActive    AllocationStatus = "Active"
	AllocationCompleted AllocationStatus = "Completed"
	AllocationCancelled AllocationStatus = "Cancelled"
)

func (s AllocationStatus) IsValid() bool {
	switch s {
	case AllocationActive, AllocationCompleted, AllocationCancelled:
		return true
	}
	return false
}
