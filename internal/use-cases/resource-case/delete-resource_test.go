package resource_case

import (
	"context"
	"testing"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// Ressourcen ohne Allokationen werden hart gelöscht.
func TestDeleteResource_HardDelete(t *testing.T) {
	ctx := context.Background()

	repo := new(MockResourceRepo)
	service := &ResourceService{repo: repo}

	resource := &entity.ResourceEntity{ID: "res-1", Name: "Anna"}

	repo.On("GetResourceByID", ctx, "res-1").Return(resource, (*app_errors.AppError)(nil))
	repo.On("HasAllocations", ctx, "res-1").Return(false, (*app_errors.AppError)(nil))
	repo.On("DeleteResource", ctx, "res-1").Return((*app_errors.AppError)(nil))

	resp, err := service.DeleteResource(ctx, "res-1")

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.False(t, resp.SoftDeleted)

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "DeactivateResource", ctx, "res-1")
}

// Ressourcen mit Planungshistorie werden nur deaktiviert.
func TestDeleteResource_SoftDeleteWithAllocations(t *testing.T) {
	ctx := context.Background()

	repo := new(MockResourceRepo)
	service := &ResourceService{repo: repo}

	resource := &entity.ResourceEntity{ID: "res-1", Name: "Anna"}

	repo.On("GetResourceByID", ctx, "res-1").Return(resource, (*app_errors.AppError)(nil))
	repo.On("HasAllocations", ctx, "res-1").Return(true, (*app_errors.AppError)(nil))
	repo.On("DeactivateResource", ctx, "res-1").Return((*app_errors.AppError)(nil))

	resp, err := service.DeleteResource(ctx, "res-1")

	assert.Nil(t, err)
	assert.True(t, resp.SoftDeleted)

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "DeleteResource", ctx, "res-1")
}

func TestDeleteResource_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockResourceRepo)
	service := &ResourceService{repo: repo}

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "resource.not_found", nil)
	repo.On("GetResourceByID", ctx, "missing").Return((*entity.ResourceEntity)(nil), notFound)

	resp, err := service.DeleteResource(ctx, "missing")

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrNotFound, err.Type)

	repo.AssertExpectations(t)
}
