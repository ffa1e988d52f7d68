package rbac_dto

type CreateRoleRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=128"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=512"`
}

type UpdateRoleRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=128"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=512"`
}

// ReplaceRolePermissionsRequest ersetzt die komplette Berechtigungsmenge der
// Rolle in einer Transaktion.
type ReplaceRolePermissionsRequest struct {
	PermissionIDs []string `json:"permission_ids" validate:"required,dive,uuid"`
}

type AssignRoleRequest struct {
	RoleID string `json:"role_id" validate:"required,uuid"`
}

type GrantPermissionRequest struct {
	PermissionID string `json:"permission_id" validate:"required,uuid"`
}

type ParamRoleID struct {
	ID string `params:"role_id" validate:"required,uuid"`
}

type ParamUserID struct {
	ID string `params:"user_id" validate:"required,uuid"`
}

type ParamUserRole struct {
	UserID string `params:"user_id" validate:"required,uuid"`
	RoleID string `params:"role_id" validate:"required,uuid"`
}

type ParamUserPermission struct {
	UserID       string `params:"user_id" validate:"required,uuid"`
	PermissionID string `params:"permission_id" validate:"required,uuid"`
}
