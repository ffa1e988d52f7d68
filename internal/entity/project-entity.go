package entity

import "time"

type ProjectEntity struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Status         ProjectStatus   `json:"status"`
	Priority       ProjectPriority `json:"priority"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	EstimatedHours float64         `json:"estimated_hours"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
}

// ProjectDetail ergänzt das Projekt um die Summen aus Allokationen und Zeiterfassung.
type ProjectDetail struct {
	Project        ProjectEntity `json:"project"`
	AllocatedHours float64       `json:"allocated_hours"`
	LoggedHours    float64       `json:"logged_hours"`
}

type ProjectListFilter struct {
	Status   *ProjectStatus
	Priority *ProjectPriority
	Limit    int
	Offset   int
}

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "Planning"
	ProjectActive    ProjectStatus = "Active"
	ProjectOnHold    ProjectStatus = "On_Hold"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectCancelled ProjectStatus = "Cancelled"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectPlanning, ProjectActive, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

type ProjectPriority string

const (
	PriorityLow      ProjectPriority = "Low"
	PriorityMedium   ProjectPriority = "Medium"
	PriorityHigh     ProjectPriority = "High"
	PriorityCritical ProjectPriority = "Critical"
)

func (p ProjectPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}
