package resource_dto

import "time"

type ResourceResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Department          string    `json:"department"`
	Role                string    `json:"role"`
	WeeklyCapacityHours float64   `json:"weekly_capacity_hours"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
}

type DeleteResourceResponse struct {
	ID string `json:"id"`
	// SoftDeleted ist true, wenn die Ressource wegen bestehender Allokationen
	// nur deaktiviert statt gelöscht wurde.
	SoftDeleted bool `json:"soft_deleted"`
}
