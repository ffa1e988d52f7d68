package rbac_case

import (
	"context"
	"testing"

	rbac_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/rbac-dto"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// commandRecorder protokolliert abgesetzte Redis-Kommandos, damit Tests die
// Cache-Invalidierung auch ohne erreichbaren Server nachweisen können.
type commandRecorder struct {
	commands []string
}

func (r *commandRecorder) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (r *commandRecorder) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		r.commands = append(r.commands, cmd.Name())
		return next(ctx, cmd)
	}
}

func (r *commandRecorder) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func TestUpdateRole_RejectsSystemRole(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRbacRepo)
	service := &RbacService{redis: deadRedis(), repo: repo}

	admin := &entity.RoleEntity{ID: "role-admin", Name: "Admin", IsSystem: true}
	repo.On("GetRoleByID", ctx, "role-admin").Return(admin, (*app_errors.AppError)(nil))

	name := "Superadmin"
	resp, err := service.UpdateRole(ctx, "role-admin", &rbac_dto.UpdateRoleRequest{Name: &name})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, "rbac.system_role_immutable", err.MessageKey)

	repo.AssertNotCalled(t, "UpdateRole", ctx, admin)
}

// Eine Umbenennung räumt die gecachten Berechtigungsmengen ab: sie tragen den
// Rollennamen und würden sonst den alten Namen weiterservieren.
func TestUpdateRole_RenameInvalidatesEffectiveCache(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRbacRepo)
	recorder := &commandRecorder{}
	client := deadRedis()
	client.AddHook(recorder)
	service := &RbacService{redis: client, repo: repo}

	role := &entity.RoleEntity{ID: "role-1", Name: "Planner", IsSystem: false}
	repo.On("GetRoleByID", ctx, "role-1").Return(role, (*app_errors.AppError)(nil))
	repo.On("UpdateRole", ctx, role).Return((*app_errors.AppError)(nil))

	name := "Kapazitätsplaner"
	resp, err := service.UpdateRole(ctx, "role-1", &rbac_dto.UpdateRoleRequest{Name: &name})

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "Kapazitätsplaner", resp.Name)

	assert.Contains(t, recorder.commands, "scan")

	repo.AssertExpectations(t)
}
