package project_dto

import "time"

type ProjectResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	EstimatedHours float64    `json:"estimated_hours"`
	CreatedAt      time.Time  `json:"created_at"`
}

type ProjectDetailResponse struct {
	ProjectResponse
	AllocatedHours float64 `json:"allocated_hours"`
	LoggedHours    float64 `json:"logged_hours"`
}

type DeleteProjectResponse struct {
	ID                   string `json:"id"`
	CancelledAllocations int    `json:"cancelled_allocations"`
}
