package entity

import "time"

// UserEntity repräsentiert ein Benutzerkonto (nicht zu verwechseln mit ResourceEntity:
// ein User meldet sich an, eine Ressource wird verplant).
type UserEntity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserCountFilter repräsentiert die Filterkriterien für die Zählung von Benutzern.
type UserCountFilter struct {
	Email    *string
	Username *string
}
