package entity

import "time"

// ResourceEntity repräsentiert eine planbare Person (Mitarbeiter) mit Wochenkapazität.
type ResourceEntity struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Department          string     `json:"department"`
	Role                string     `json:"role"`
	WeeklyCapacityHours float64    `json:"weekly_capacity_hours"`
	IsActive            bool       `json:"is_active"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

// ResourceListFilter repräsentiert die Filterkriterien der Ressourcenliste.
type ResourceListFilter struct {
	Department *string
	Active     *bool
	Limit      int
	Offset     int
}
