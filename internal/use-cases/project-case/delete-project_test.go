package project_case

import (
	"context"
	"errors"
	"testing"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// Test Happy path: Projekt wird storniert, aktive Allokationen kaskadieren mit.
func TestDeleteProject_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	txManager := new(MockTxManager)
	mockTx := new(MockTx)
	service := &ProjectService{repo: repo, txManager: txManager}

	project := &entity.ProjectEntity{ID: "proj-1", Name: "Relaunch", Status: entity.ProjectActive}

	repo.On("GetProjectByID", ctx, "proj-1").Return(project, (*app_errors.AppError)(nil))
	txManager.On("Begin", ctx).Return(mockTx, (*app_errors.AppError)(nil))
	repo.On("CancelProject", ctx, mockTx, "proj-1").Return((*app_errors.AppError)(nil))
	repo.On("CancelActiveAllocations", ctx, mockTx, "proj-1").Return(3, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	mockTx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	resp, err := service.DeleteProject(ctx, "proj-1")

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "proj-1", resp.ID)
	assert.Equal(t, 3, resp.CancelledAllocations)

	repo.AssertExpectations(t)
	txManager.AssertExpectations(t)
}

// Scheitert die Kaskade, wird nichts committet.
func TestDeleteProject_RollbackOnCascadeFailure(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	txManager := new(MockTxManager)
	mockTx := new(MockTx)
	service := &ProjectService{repo: repo, txManager: txManager}

	project := &entity.ProjectEntity{ID: "proj-1", Status: entity.ProjectActive}
	dbErr := app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", errors.New("deadlock"))

	repo.On("GetProjectByID", ctx, "proj-1").Return(project, (*app_errors.AppError)(nil))
	txManager.On("Begin", ctx).Return(mockTx, (*app_errors.AppError)(nil))
	repo.On("CancelProject", ctx, mockTx, "proj-1").Return((*app_errors.AppError)(nil))
	repo.On("CancelActiveAllocations", ctx, mockTx, "proj-1").Return(0, dbErr)
	mockTx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	resp, err := service.DeleteProject(ctx, "proj-1")

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrInternal, err.Type)

	mockTx.AssertNotCalled(t, "Commit", ctx)
	repo.AssertExpectations(t)
}

func TestDeleteProject_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	txManager := new(MockTxManager)
	service := &ProjectService{repo: repo, txManager: txManager}

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "project.not_found", nil)
	repo.On("GetProjectByID", ctx, "missing").Return((*entity.ProjectEntity)(nil), notFound)

	resp, err := service.DeleteProject(ctx, "missing")

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrNotFound, err.Type)

	txManager.AssertNotCalled(t, "Begin", ctx)
	repo.AssertExpectations(t)
}
