package rbac_case

import (
	"context"

	"github.com/Xenn-00/kapazitaets-meister/internal/abstraction/tx"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockRbacRepo struct {
	mock.Mock
}

func (m *MockRbacRepo) InsertRole(ctx context.Context, model *entity.RoleEntity) (*entity.RoleEntity, *app_errors.AppError) {
	args := m.Called(ctx, model)
	return args.Get(0).(*entity.RoleEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockRbacRepo) ListRoles(ctx context.Context) ([]entity.RoleEntity, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.RoleEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockRbacRepo) GetRoleByID(ctx context.Context, roleID string) (*entity.RoleEntity, *app_errors.AppError) {
	args := m.Called(ctx, roleID)
	return args.Get(0).(*entity.RoleEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockRbacRepo) UpdateRole(ctx context.Context, model *entity.RoleEntity) *app_errors.AppError {
	args := m.Called(ctx, model)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockRbacRepo) DeleteRole(ctx context.Context, roleID string) *app_errors.AppError {
	args := m.Called(ctx, roleID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockRbacRepo) ListPermissions(ctx context.Context) ([]entity.PermissionEntity, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.PermissionEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockRbacRepo) ReplaceRolePermissions(ctx context.Context, t tx.Tx, roleID string, permissionIDs []string) *app_errors.AppError {
	args := m.Called(ctx, t, roleID, permissionIDs)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockRbacRepo) AssignUserRole(ctx context.Context, model *entity.UserRoleEntity) *app_errors.AppError {
	args := m.Called(ctx, model)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockRbacRepo) RemoveUserRole(ctx context.Context, userID, roleID string) *app_errors.AppError {
	args := m.Called(ctx, userID, roleID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockRbacRepo) GrantUserPermission(ctx context.Context, model *entity.UserPermissionEntity) *app_errors.AppError {
	args := m.Called(ctx, model)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockRbacRepo) RevokeUserPermission(ctx context.Context, userID, permissionID string) *app_errors.AppError {
	args := m.Called(ctx, userID, permissionID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockRbacRepo) ResolveEffective(ctx context.Context, userID string) (*entity.EffectivePermissions, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*entity.EffectivePermissions), args.Get(1).(*app_errors.AppError)
}

func (m *MockRbacRepo) ListUserEmailsWithPermission(ctx context.Context, permissionKey string) ([]string, *app_errors.AppError) {
	args := m.Called(ctx, permissionKey)
	return args.Get(0).([]string), args.Get(1).(*app_errors.AppError)
}

type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) *app_errors.AppError {
	args := m.Called(ctx)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTx) Rollback(ctx context.Context) *app_errors.AppError {
	args := m.Called(ctx)
	return args.Get(0).(*app_errors.AppError)
}

type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (tx.Tx, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).(tx.Tx), args.Get(1).(*app_errors.AppError)
}
