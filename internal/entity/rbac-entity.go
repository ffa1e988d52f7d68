package entity

import "time"

type RoleEntity struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsSystem    bool      `json:"is_system"`
	CreatedAt   time.Time `json:"created_at"`
}

// PermissionEntity ist ein Eintrag des gesäten Berechtigungskatalogs,
// adressiert als "<resource>:<action>" (z. B. "dashboard:view").
type PermissionEntity struct {
	ID          string  `json:"id"`
	Resource    string  `json:"resource"`
	Action      string  `json:"action"`
	Description *string `json:"description,omitempty"`
}

// Key liefert die kanonische Form "<resource>:<action>".
func (p PermissionEntity) Key() string {
	return p.Resource + ":" + p.Action
}

type UserRoleEntity struct {
	UserID     string    `json:"user_id"`
	RoleID     string    `json:"role_id"`
	AssignedBy string    `json:"assigned_by"`
	AssignedAt time.Time `json:"assigned_at"`
}

type UserPermissionEntity struct {
	UserID       string    `json:"user_id"`
	PermissionID string    `json:"permission_id"`
	GrantedBy    string    `json:"granted_by"`
	GrantedAt    time.Time `json:"granted_at"`
}

// EffectivePermissions ist die aufgelöste Berechtigungsmenge eines Benutzers:
// Vereinigung der Rollenberechtigungen und der direkten Grants.
type EffectivePermissions struct {
	UserID      string   `json:"user_id"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"` // kanonische Keys, sortiert
}

// Has prüft, ob der Key in der aufgelösten Menge enthalten ist.
func (e *EffectivePermissions) Has(key string) bool {
	for _, p := range e.Permissions {
		if p == key {
			return true
		}
	}
	return false
}
