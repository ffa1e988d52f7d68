package auth_repo

import (
	"context"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
)

type AuthRepoContract interface {
	CountUsers(ctx context.Context, filter entity.UserCountFilter) (int, *app_errors.AppError)
	SaveUser(ctx context.Context, user entity.UserEntity) (string, *app_errors.AppError)
	FindByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError)
	FindByUsername(ctx context.Context, username string) (*entity.UserEntity, *app_errors.AppError)
	FindByID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError)
}
