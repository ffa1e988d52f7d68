package rbac_case

import (
	"context"
	"testing"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// deadRedis liefert einen Client ohne erreichbaren Server: jeder Zugriff
// schlägt fehl und die Services müssen auf die Datenbank zurückfallen.
func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
}

// Cache nicht erreichbar → Auflösung kommt aus der Datenbank.
func TestGetEffectivePermissions_FallsBackToDB(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRbacRepo)
	service := &RbacService{redis: deadRedis(), repo: repo}

	effective := &entity.EffectivePermissions{
		UserID:      "user-1",
		Roles:       []string{"Planner"},
		Permissions: []string{"allocations:edit", "dashboard:view"},
	}

	repo.On("ResolveEffective", ctx, "user-1").Return(effective, (*app_errors.AppError)(nil))

	resp, err := service.GetEffectivePermissions(ctx, "user-1")

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.False(t, resp.FromCache)
	assert.Equal(t, []string{"Planner"}, resp.Roles)
	assert.Equal(t, []string{"allocations:edit", "dashboard:view"}, resp.Permissions)

	repo.AssertExpectations(t)
}

func TestHasPermission(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRbacRepo)
	service := &RbacService{redis: deadRedis(), repo: repo}

	effective := &entity.EffectivePermissions{
		UserID:      "user-1",
		Roles:       []string{"Planner"},
		Permissions: []string{"dashboard:view"},
	}

	repo.On("ResolveEffective", ctx, "user-1").Return(effective, (*app_errors.AppError)(nil))

	ok, err := service.HasPermission(ctx, "user-1", "dashboard:view")
	assert.Nil(t, err)
	assert.True(t, ok)

	ok, err = service.HasPermission(ctx, "user-1", "rbac:manage")
	assert.Nil(t, err)
	assert.False(t, ok)
}
