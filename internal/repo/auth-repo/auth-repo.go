package auth_repo

import (
	"context"
	"errors"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthRepo struct {
	db *pgxpool.Pool
}

func NewAuthRepo(db *pgxpool.Pool) AuthRepoContract {
	return &AuthRepo{db: db}
}

func (r *AuthRepo) CountUsers(ctx context.Context, filter entity.UserCountFilter) (int, *app_errors.AppError) {
	query := `
	SELECT COUNT(*) FROM users
	WHERE ($1::text IS NULL OR email = $1)
	   OR ($2::text IS NULL OR username = $2);
	`

	var count int
	if err := r.db.QueryRow(ctx, query, filter.Email, filter.Username).Scan(&count); err != nil {
		return 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return count, nil
}

func (r *AuthRepo) SaveUser(ctx context.Context, user entity.UserEntity) (string, *app_errors.AppError) {
	query := `
	INSERT INTO users (id, email, username, name, password_hash, is_active)
	VALUES ($1, $2, $3, $4, $5, true)
	RETURNING id;
	`

	var id string
	if err := r.db.QueryRow(ctx, query, user.ID, user.Email, user.Username, user.Name, user.PasswordHash).Scan(&id); err != nil {
		return "", app_errors.MapPgxError(err)
	}
	return id, nil
}

func (r *AuthRepo) FindByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError) {
	return r.findBy(ctx, "email", email)
}

func (r *AuthRepo) FindByUsername(ctx context.Context, username string) (*entity.UserEntity, *app_errors.AppError) {
	return r.findBy(ctx, "username", username)
}

func (r *AuthRepo) FindByID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError) {
	return r.findBy(ctx, "id", userID)
}

func (r *AuthRepo) findBy(ctx context.Context, column, value string) (*entity.UserEntity, *app_errors.AppError) {
	// column ist eine hartkodierte Spalte der Aufrufer oben, nie User-Input.
	query := `
	SELECT id, email, username, name, password_hash, is_active, created_at, updated_at
	FROM users
	WHERE ` + column + ` = $1;
	`

	var u entity.UserEntity
	if err := r.db.QueryRow(ctx, query, value).Scan(&u.ID, &u.Email, &u.Username, &u.Name, &u.PasswordHash, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "user_not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &u, nil
}
