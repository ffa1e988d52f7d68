package rbac_dto

import "time"

type RoleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsSystem    bool      `json:"is_system"`
	CreatedAt   time.Time `json:"created_at"`
}

type PermissionResponse struct {
	ID          string  `json:"id"`
	Resource    string  `json:"resource"`
	Action      string  `json:"action"`
	Key         string  `json:"key"`
	Description *string `json:"description,omitempty"`
}

type EffectivePermissionsResponse struct {
	UserID      string   `json:"user_id"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
	// FromCache markiert, ob die Menge aus dem Redis-Cache kam.
	FromCache bool `json:"from_cache"`
}

type MutationResponse struct {
	Ok bool `json:"ok"`
}
