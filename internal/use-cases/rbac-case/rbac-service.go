package rbac_case

import (
	"context"
	"fmt"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/abstraction/tx"
	rbac_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/rbac-dto"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	rbac_repo "github.com/Xenn-00/kapazitaets-meister/internal/repo/rbac-repo"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// effectiveTTL ist die Lebensdauer der gecachten Berechtigungsmenge.
const effectiveTTL = 5 * time.Minute

type RbacService struct {
	redis     *redis.Client
	repo      rbac_repo.RbacRepoContract
	txManager tx.TxManager
}

func NewRbacService(db *pgxpool.Pool, redis *redis.Client) RbacServiceContract {
	return &RbacService{
		redis:     redis,
		repo:      rbac_repo.NewRbacRepo(db),
		txManager: tx.NewPgxTxManager(db),
	}
}

func effectiveKey(userID string) string {
	return fmt.Sprintf("rbac:effective:%s", userID)
}

func (s *RbacService) CreateRole(ctx context.Context, req *rbac_dto.CreateRoleRequest) (*rbac_dto.RoleResponse, *app_errors.AppError) {
	id, idErr := uuid.NewV7()
	if idErr != nil {
		log.Error().Err(idErr).Msg("Fehler beim Erzeugen der UUID v7")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	model := &entity.RoleEntity{
		ID:          id.String(),
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := s.repo.InsertRole(ctx, model)
	if err != nil {
		return nil, err
	}
	return toRoleResponse(created), nil
}

func (s *RbacService) ListRoles(ctx context.Context) ([]rbac_dto.RoleResponse, *app_errors.AppError) {
	roles, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]rbac_dto.RoleResponse, 0, len(roles))
	for i := range roles {
		out = append(out, *toRoleResponse(&roles[i]))
	}
	return out, nil
}

func (s *RbacService) UpdateRole(ctx context.Context, roleID string, req *rbac_dto.UpdateRoleRequest) (*rbac_dto.RoleResponse, *app_errors.AppError) {
	role, err := s.repo.GetRoleByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if role.IsSystem {
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "rbac.system_role_immutable", nil)
	}

	if req.Name != nil {
		role.Name = *req.Name
	}
	if req.Description != nil {
		role.Description = req.Description
	}

	if err := s.repo.UpdateRole(ctx, role); err != nil {
		return nil, err
	}

	// Gecachte Berechtigungsmengen tragen den Rollennamen mit und müssen
	// nach einer Umbenennung neu aufgebaut werden.
	s.invalidateAll(ctx)

	return toRoleResponse(role), nil
}

// DeleteRole löscht eine Rolle. Gesäte Systemrollen (Admin usw.) sind
// unantastbar, sonst sperrt sich der letzte Admin selbst aus.
func (s *RbacService) DeleteRole(ctx context.Context, roleID string) *app_errors.AppError {
	role, err := s.repo.GetRoleByID(ctx, roleID)
	if err != nil {
		return err
	}
	if role.IsSystem {
		return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "rbac.system_role_immutable", nil)
	}

	if err := s.repo.DeleteRole(ctx, roleID); err != nil {
		return err
	}

	s.invalidateAll(ctx)
	return nil
}

func (s *RbacService) ListPermissions(ctx context.Context) ([]rbac_dto.PermissionResponse, *app_errors.AppError) {
	permissions, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]rbac_dto.PermissionResponse, 0, len(permissions))
	for _, p := range permissions {
		out = append(out, rbac_dto.PermissionResponse{
			ID:          p.ID,
			Resource:    p.Resource,
			Action:      p.Action,
			Key:         p.Key(),
			Description: p.Description,
		})
	}
	return out, nil
}

// ReplaceRolePermissions ersetzt die Berechtigungsmenge der Rolle atomar
// (Löschen + Einfügen in einer Transaktion).
func (s *RbacService) ReplaceRolePermissions(ctx context.Context, roleID string, req *rbac_dto.ReplaceRolePermissionsRequest) *app_errors.AppError {
	role, err := s.repo.GetRoleByID(ctx, roleID)
	if err != nil {
		return err
	}
	if role.IsSystem {
		return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "rbac.system_role_immutable", nil)
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		log.Error().Err(err.Err).Msg("Fehler beim Starten der DB-Transaktion")
		return err
	}
	defer t.Rollback(ctx)

	if err := s.repo.ReplaceRolePermissions(ctx, t, roleID, req.PermissionIDs); err != nil {
		return err
	}

	if err := t.Commit(ctx); err != nil {
		log.Error().Err(err.Err).Msg("Fehler beim Ausführen der DB-Transaktion")
		return err
	}

	// Die Rollenänderung betrifft alle Träger der Rolle.
	s.invalidateAll(ctx)
	return nil
}

func (s *RbacService) AssignUserRole(ctx context.Context, userID, roleID, assignedBy string) *app_errors.AppError {
	if _, err := s.repo.GetRoleByID(ctx, roleID); err != nil {
		return err
	}

	if err := s.repo.AssignUserRole(ctx, &entity.UserRoleEntity{
		UserID:     userID,
		RoleID:     roleID,
		AssignedBy: assignedBy,
	}); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *RbacService) RemoveUserRole(ctx context.Context, userID, roleID string) *app_errors.AppError {
	if err := s.repo.RemoveUserRole(ctx, userID, roleID); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *RbacService) GrantUserPermission(ctx context.Context, userID, permissionID, grantedBy string) *app_errors.AppError {
	if err := s.repo.GrantUserPermission(ctx, &entity.UserPermissionEntity{
		UserID:       userID,
		PermissionID: permissionID,
		GrantedBy:    grantedBy,
	}); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *RbacService) RevokeUserPermission(ctx context.Context, userID, permissionID string) *app_errors.AppError {
	if err := s.repo.RevokeUserPermission(ctx, userID, permissionID); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

// GetEffectivePermissions löst die Berechtigungsmenge des Benutzers auf:
// Vereinigung aller Rollenberechtigungen und direkten Grants. Redis dient als
// Cache (TTL 5 Minuten), NICHT als Source of Truth; jede Mutation invalidiert.
func (s *RbacService) GetEffectivePermissions(ctx context.Context, userID string) (*rbac_dto.EffectivePermissionsResponse, *app_errors.AppError) {
	cacheKey := effectiveKey(userID)
	if cached, cachedErr := utils.GetCacheData[entity.EffectivePermissions](ctx, s.redis, cacheKey); cached != nil && cachedErr == nil {
		return &rbac_dto.EffectivePermissionsResponse{
			UserID:      cached.UserID,
			Roles:       cached.Roles,
			Permissions: cached.Permissions,
			FromCache:   true,
		}, nil
	}
	// Bei Cache-Fehlern wird bewusst fortgefahren (Fallback auf DB)

	effective, err := s.repo.ResolveEffective(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := utils.SetCacheData(ctx, s.redis, cacheKey, effective, effectiveTTL); err != nil {
		log.Error().Err(err.Err).Msg("Fehler beim Einstellen der Redis-Cache")
	}

	return &rbac_dto.EffectivePermissionsResponse{
		UserID:      effective.UserID,
		Roles:       effective.Roles,
		Permissions: effective.Permissions,
	}, nil
}

func (s *RbacService) HasPermission(ctx context.Context, userID, permissionKey string) (bool, *app_errors.AppError) {
	resp, err := s.GetEffectivePermissions(ctx, userID)
	if err != nil {
		return false, err
	}

	effective := entity.EffectivePermissions{Permissions: resp.Permissions}
	return effective.Has(permissionKey), nil
}

func (s *RbacService) invalidate(ctx context.Context, userID string) {
	if err := utils.DeleteCacheData(ctx, s.redis, effectiveKey(userID)); err != nil {
		log.Error().Err(err).Msg("Fehler beim Löschen der Cache")
	}
}

// invalidateAll räumt alle gecachten Berechtigungsmengen ab, wenn sich eine
// Rolle ändert und die betroffenen Benutzer nicht einzeln bekannt sind.
func (s *RbacService) invalidateAll(ctx context.Context) {
	iter := s.redis.Scan(ctx, 0, "rbac:effective:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.redis.Del(ctx, iter.Val()).Err(); err != nil {
			log.Error().Err(err).Msg("Fehler beim Löschen der Cache")
		}
	}
	if err := iter.Err(); err != nil {
		log.Error().Err(err).Msg("Fehler beim Scannen der Redis-Schlüssel")
	}
}

func toRoleResponse(r *entity.RoleEntity) *rbac_dto.RoleResponse {
	return &rbac_dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		IsSystem:    r.IsSystem,
		CreatedAt:   r.CreatedAt,
	}
}
