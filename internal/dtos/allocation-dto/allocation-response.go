package allocation_dto

import "time"

type AllocationResponse struct {
	ID                string             `json:"id"`
	ResourceID        string             `json:"resource_id"`
	ProjectID         string             `json:"project_id"`
	AllocatedHours    float64            `json:"allocated_hours"`
	WeeklyAllocations map[string]float64 `json:"weekly_allocations,omitempty"`
	StartDate         time.Time          `json:"start_date"`
	EndDate           *time.Time         `json:"end_date,omitempty"`
	Role              string             `json:"role"`
	Status            string             `json:"status"`
	CreatedAt         time.Time          `json:"created_at"`
	// Warnings trägt Überlastungs-Hinweise (z. B. Woche über Klemm-Schwelle).
	// Die Stunden werden nie stillschweigend verändert.
	Warnings []CapacityWarning `json:"warnings,omitempty"`
}

// CapacityWarning beschreibt eine Woche, in der die neue Allokation die
// Auslastung der Ressource über die konfigurierte Schwelle hebt.
type CapacityWarning struct {
	Week           string  `json:"week"`
	UtilizationPct float64 `json:"utilization_pct"`
	Threshold      float64 `json:"threshold"`
	MessageKey     string  `json:"message_key"`
}

type DeleteAllocationResponse struct {
	ID string `json:"id"`
}
