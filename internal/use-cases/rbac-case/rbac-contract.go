package rbac_case

import (
	"context"

	rbac_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/rbac-dto"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
)

// RbacServiceContract bündelt Rollen-/Berechtigungsverwaltung und die
// Auflösung der effektiven Berechtigungsmenge.
type RbacServiceContract interface {
	CreateRole(ctx context.Context, req *rbac_dto.CreateRoleRequest) (*rbac_dto.RoleResponse, *app_errors.AppError)
	ListRoles(ctx context.Context) ([]rbac_dto.RoleResponse, *app_errors.AppError)
	UpdateRole(ctx context.Context, roleID string, req *rbac_dto.UpdateRoleRequest) (*rbac_dto.RoleResponse, *app_errors.AppError)
	DeleteRole(ctx context.Context, roleID string) *app_errors.AppError

	ListPermissions(ctx context.Context) ([]rbac_dto.PermissionResponse, *app_errors.AppError)
	ReplaceRolePermissions(ctx context.Context, roleID string, req *rbac_dto.ReplaceRolePermissionsRequest) *app_errors.AppError

	AssignUserRole(ctx context.Context, userID, roleID, assignedBy string) *app_errors.AppError
	RemoveUserRole(ctx context.Context, userID, roleID string) *app_errors.AppError
	GrantUserPermission(ctx context.Context, userID, permissionID, grantedBy string) *app_errors.AppError
	RevokeUserPermission(ctx context.Context, userID, permissionID string) *app_errors.AppError

	GetEffectivePermissions(ctx context.Context, userID string) (*rbac_dto.EffectivePermissionsResponse, *app_errors.AppError)
	// HasPermission ist der Guard-Einstieg der Middleware.
	HasPermission(ctx context.Context, userID, permissionKey string) (bool, *app_errors.AppError)
}
