package rbac_repo

import (
	"context"

	"github.com/Xenn-00/kapazitaets-meister/internal/abstraction/tx"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
)

type RbacRepoContract interface {
	InsertRole(ctx context.Context, model *entity.RoleEntity) (*entity.RoleEntity, *app_errors.AppError)
	ListRoles(ctx context.Context) ([]entity.RoleEntity, *app_errors.AppError)
	GetRoleByID(ctx context.Context, roleID string) (*entity.RoleEntity, *app_errors.AppError)
	UpdateRole(ctx context.Context, model *entity.RoleEntity) *app_errors.AppError
	DeleteRole(ctx context.Context, roleID string) *app_errors.AppError

	ListPermissions(ctx context.Context) ([]entity.PermissionEntity, *app_errors.AppError)

	ReplaceRolePermissions(ctx context.Context, t tx.Tx, roleID string, permissionIDs []string) *app_errors.AppError
	AssignUserRole(ctx context.Context, model *entity.UserRoleEntity) *app_errors.AppError
	RemoveUserRole(ctx context.Context, userID, roleID string) *app_errors.AppError
	GrantUserPermission(ctx context.Context, model *entity.UserPermissionEntity) *app_errors.AppError
	RevokeUserPermission(ctx context.Context, userID, permissionID string) *app_errors.AppError

	ResolveEffective(ctx context.Context, userID string) (*entity.EffectivePermissions, *app_errors.AppError)
	ListUserEmailsWithPermission(ctx context.Context, permissionKey string) ([]string, *app_errors.AppError)
}
