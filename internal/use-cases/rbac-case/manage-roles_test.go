package rbac_case

import (
	"context"
	"testing"

	rbac_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/rbac-dto"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Systemrollen sind unantastbar.
func TestDeleteRole_RejectsSystemRole(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRbacRepo)
	service := &RbacService{redis: deadRedis(), repo: repo}

	admin := &entity.RoleEntity{ID: "role-admin", Name: "Admin", IsSystem: true}
	repo.On("GetRoleByID", ctx, "role-admin").Return(admin, (*app_errors.AppError)(nil))

	err := service.DeleteRole(ctx, "role-admin")

	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrForbidden, err.Type)
	assert.Equal(t, "rbac.system_role_immutable", err.MessageKey)

	repo.AssertNotCalled(t, "DeleteRole", ctx, "role-admin")
}

func TestDeleteRole_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRbacRepo)
	service := &RbacService{redis: deadRedis(), repo: repo}

	custom := &entity.RoleEntity{ID: "role-1", Name: "Reporter", IsSystem: false}
	repo.On("GetRoleByID", ctx, "role-1").Return(custom, (*app_errors.AppError)(nil))
	repo.On("DeleteRole", ctx, "role-1").Return((*app_errors.AppError)(nil))

	err := service.DeleteRole(ctx, "role-1")

	assert.Nil(t, err)
	repo.AssertExpectations(t)
}

// Test Happy path: Ersetzung läuft in einer Transaktion.
func TestReplaceRolePermissions_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRbacRepo)
	txManager := new(MockTxManager)
	mockTx := new(MockTx)
	service := &RbacService{redis: deadRedis(), repo: repo, txManager: txManager}

	role := &entity.RoleEntity{ID: "role-1", Name: "Planner", IsSystem: false}
	permissionIDs := []string{"perm-1", "perm-2"}

	repo.On("GetRoleByID", ctx, "role-1").Return(role, (*app_errors.AppError)(nil))
	txManager.On("Begin", ctx).Return(mockTx, (*app_errors.AppError)(nil))
	repo.On("ReplaceRolePermissions", ctx, mockTx, "role-1", permissionIDs).Return((*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	mockTx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	err := service.ReplaceRolePermissions(ctx, "role-1", &rbac_dto.ReplaceRolePermissionsRequest{
		PermissionIDs: permissionIDs,
	})

	assert.Nil(t, err)
	repo.AssertExpectations(t)
	txManager.AssertExpectations(t)
}

func TestReplaceRolePermissions_RejectsSystemRole(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRbacRepo)
	txManager := new(MockTxManager)
	service := &RbacService{redis: deadRedis(), repo: repo, txManager: txManager}

	admin := &entity.RoleEntity{ID: "role-admin", Name: "Admin", IsSystem: true}
	repo.On("GetRoleByID", ctx, "role-admin").Return(admin, (*app_errors.AppError)(nil))

	err := service.ReplaceRolePermissions(ctx, "role-admin", &rbac_dto.ReplaceRolePermissionsRequest{
		PermissionIDs: []string{"perm-1"},
	})

	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrForbidden, err.Type)

	txManager.AssertNotCalled(t, "Begin", mock.Anything)
}

// Rollen-Zuweisung validiert die Rolle und invalidiert den Benutzer-Cache.
func TestAssignUserRole_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRbacRepo)
	service := &RbacService{redis: deadRedis(), repo: repo}

	role := &entity.RoleEntity{ID: "role-1", Name: "Planner"}
	repo.On("GetRoleByID", ctx, "role-1").Return(role, (*app_errors.AppError)(nil))
	repo.On("AssignUserRole", ctx, mock.AnythingOfType("*entity.UserRoleEntity")).Return((*app_errors.AppError)(nil))

	err := service.AssignUserRole(ctx, "user-1", "role-1", "admin-1")

	assert.Nil(t, err)
	repo.AssertExpectations(t)
}
