package rbac_repo

import (
	"context"
	"errors"
	"sort"

	"github.com/Xenn-00/kapazitaets-meister/internal/abstraction/tx"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RbacRepo struct {
	db *pgxpool.Pool
}

func NewRbacRepo(db *pgxpool.Pool) RbacRepoContract {
	return &RbacRepo{db: db}
}

func (r *RbacRepo) InsertRole(ctx context.Context, model *entity.RoleEntity) (*entity.RoleEntity, *app_errors.AppError) {
	query := `
	INSERT INTO roles (id, name, description, is_system)
	VALUES ($1, $2, $3, false)
	RETURNING id, name, description, is_system, created_at;
	`

	var role entity.RoleEntity
	if err := r.db.QueryRow(ctx, query, model.ID, model.Name, model.Description).
		Scan(&role.ID, &role.Name, &role.Description, &role.IsSystem, &role.CreatedAt); err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return &role, nil
}

func (r *RbacRepo) ListRoles(ctx context.Context) ([]entity.RoleEntity, *app_errors.AppError) {
	query := `SELECT id, name, description, is_system, created_at FROM roles ORDER BY name;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var roles []entity.RoleEntity
	for rows.Next() {
		var role entity.RoleEntity
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.IsSystem, &role.CreatedAt); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return roles, nil
}

func (r *RbacRepo) GetRoleByID(ctx context.Context, roleID string) (*entity.RoleEntity, *app_errors.AppError) {
	query := `SELECT id, name, description, is_system, created_at FROM roles WHERE id = $1;`

	var role entity.RoleEntity
	if err := r.db.QueryRow(ctx, query, roleID).Scan(&role.ID, &role.Name, &role.Description, &role.IsSystem, &role.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "role_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return &role, nil
}

func (r *RbacRepo) UpdateRole(ctx context.Context, model *entity.RoleEntity) *app_errors.AppError {
	query := `
	UPDATE roles SET name = $2, description = $3 WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, model.ID, model.Name, model.Description)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "role_not_found", nil)
	}
	return nil
}

func (r *RbacRepo) DeleteRole(ctx context.Context, roleID string) *app_errors.AppError {
	query := `DELETE FROM roles WHERE id = $1;`

	tag, err := r.db.Exec(ctx, query, roleID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "role_not_found", nil)
	}
	return nil
}

func (r *RbacRepo) ListPermissions(ctx context.Context) ([]entity.PermissionEntity, *app_errors.AppError) {
	query := `SELECT id, resource, action, description FROM permissions ORDER BY resource, action;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var perms []entity.PermissionEntity
	for rows.Next() {
		var p entity.PermissionEntity
		if err := rows.Scan(&p.ID, &p.Resource, &p.Action, &p.Description); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		perms = append(perms, p)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return perms, nil
}

// ReplaceRolePermissions tauscht die Berechtigungsmenge einer Rolle komplett
// aus (delete + batch insert in einer Transaktion).
func (r *RbacRepo) ReplaceRolePermissions(ctx context.Context, t tx.Tx, roleID string, permissionIDs []string) *app_errors.AppError {
	pgxTx, ok := tx.PgxTxFrom(t)
	if !ok {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)
	}

	if _, err := pgxTx.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1;`, roleID); err != nil {
		return app_errors.MapPgxError(err)
	}

	if len(permissionIDs) == 0 {
		return nil
	}

	insertQuery := `
	INSERT INTO role_permissions (role_id, permission_id)
	SELECT $1, unnest($2::uuid[]);
	`
	if _, err := pgxTx.Exec(ctx, insertQuery, roleID, permissionIDs); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

func (r *RbacRepo) AssignUserRole(ctx context.Context, model *entity.UserRoleEntity) *app_errors.AppError {
	query := `
	INSERT INTO user_roles (user_id, role_id, assigned_by)
	VALUES ($1, $2, $3);
	`

	if _, err := r.db.Exec(ctx, query, model.UserID, model.RoleID, model.AssignedBy); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

func (r *RbacRepo) RemoveUserRole(ctx context.Context, userID, roleID string) *app_errors.AppError {
	query := `DELETE FROM user_roles WHERE user_id = $1 AND role_id = $2;`

	tag, err := r.db.Exec(ctx, query, userID, roleID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "role_not_found", nil)
	}
	return nil
}

func (r *RbacRepo) GrantUserPermission(ctx context.Context, model *entity.UserPermissionEntity) *app_errors.AppError {
	query := `
	INSERT INTO user_permissions (user_id, permission_id, granted_by)
	VALUES ($1, $2, $3);
	`

	if _, err := r.db.Exec(ctx, query, model.UserID, model.PermissionID, model.GrantedBy); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

func (r *RbacRepo) RevokeUserPermission(ctx context.Context, userID, permissionID string) *app_errors.AppError {
	query := `DELETE FROM user_permissions WHERE user_id = $1 AND permission_id = $2;`

	tag, err := r.db.Exec(ctx, query, userID, permissionID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "permission_not_found", nil)
	}
	return nil
}

// ResolveEffective liefert die wirksame Berechtigungsmenge eines Benutzers:
// Vereinigung der Berechtigungen seiner Rollen mit den direkten Grants.
func (r *RbacRepo) ResolveEffective(ctx context.Context, userID string) (*entity.EffectivePermissions, *app_errors.AppError) {
	roleQuery := `
	SELECT ro.name
	FROM user_roles ur
	JOIN roles ro ON ro.id = ur.role_id
	WHERE ur.user_id = $1
	ORDER BY ro.name;
	`

	rows, err := r.db.Query(ctx, roleQuery, userID)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	var roles []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		roles = append(roles, name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	permQuery := `
	SELECT DISTINCT p.resource || ':' || p.action
	FROM permissions p
	WHERE p.id IN (
		SELECT rp.permission_id
		FROM user_roles ur
		JOIN role_permissions rp ON rp.role_id = ur.role_id
		WHERE ur.user_id = $1
	)
	OR p.id IN (
		SELECT up.permission_id
		FROM user_permissions up
		WHERE up.user_id = $1
	);
	`

	rows, err = r.db.Query(ctx, permQuery, userID)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	var perms []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			rows.Close()
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		perms = append(perms, key)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	sort.Strings(perms)

	return &entity.EffectivePermissions{
		UserID:      userID,
		Roles:       roles,
		Permissions: perms,
	}, nil
}

// ListUserEmailsWithPermission sammelt die E-Mail-Adressen aller Benutzer,
// deren wirksame Menge den Key enthält (für den Alert-Digest).
func (r *RbacRepo) ListUserEmailsWithPermission(ctx context.Context, permissionKey string) ([]string, *app_errors.AppError) {
	query := `
	SELECT DISTINCT u.email
	FROM users u
	JOIN permissions p ON p.resource || ':' || p.action = $1
	WHERE u.is_active = true
	  AND (
		EXISTS (
			SELECT 1 FROM user_roles ur
			JOIN role_permissions rp ON rp.role_id = ur.role_id
			WHERE ur.user_id = u.id AND rp.permission_id = p.id
		)
		OR EXISTS (
			SELECT 1 FROM user_permissions up
			WHERE up.user_id = u.id AND up.permission_id = p.id
		)
	  )
	ORDER BY u.email;
	`

	rows, err := r.db.Query(ctx, query, permissionKey)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		emails = append(emails, email)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return emails, nil
}
