package resource_case

import (
	"context"
	"testing"

	resource_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/resource-dto"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Patch-Semantik: nur gesetzte Felder ändern sich.
func TestUpdateResource_PartialPatch(t *testing.T) {
	ctx := context.Background()

	repo := new(MockResourceRepo)
	service := &ResourceService{repo: repo}

	resource := &entity.ResourceEntity{
		ID:                  "res-1",
		Name:                "Anna",
		Email:               "anna@example.com",
		Department:          "Engineering",
		Role:                "Developer",
		WeeklyCapacityHours: 40,
		IsActive:            true,
	}

	repo.On("GetResourceByID", ctx, "res-1").Return(resource, (*app_errors.AppError)(nil))
	repo.On("UpdateResource", ctx, mock.AnythingOfType("*entity.ResourceEntity")).Return((*app_errors.AppError)(nil))

	newCapacity := 32.0
	resp, err := service.UpdateResource(ctx, "res-1", &resource_dto.UpdateResourceRequest{
		WeeklyCapacityHours: &newCapacity,
	})

	assert.Nil(t, err)
	assert.Equal(t, 32.0, resp.WeeklyCapacityHours)
	// Unberührte Felder bleiben stehen.
	assert.Equal(t, "Anna", resp.Name)
	assert.Equal(t, "Engineering", resp.Department)

	repo.AssertExpectations(t)
}
