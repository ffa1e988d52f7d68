package report_case

import (
	"context"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	worker_task "github.com/Xenn-00/kapazitaets-meister/internal/worker/tasks"
	"github.com/stretchr/testify/mock"
)

type MockPlanningRepo struct {
	mock.Mock
}

func (m *MockPlanningRepo) LoadSnapshot(ctx context.Context, from, to time.Time) (*entity.PlanningSnapshot, *app_errors.AppError) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(*entity.PlanningSnapshot), args.Get(1).(*app_errors.AppError)
}

func (m *MockPlanningRepo) CountActiveProjects(ctx context.Context) (int, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockPlanningRepo) ListProjectsWithNames(ctx context.Context) (map[string]string, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]string), args.Get(1).(*app_errors.AppError)
}

type MockTaskQueue struct {
	mock.Mock
}

func (m *MockTaskQueue) EnqueueBuildWeeklyReport(payload *worker_task.BuildWeeklyReportPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

func (m *MockTaskQueue) EnqueueSendAlertDigest() error {
	args := m.Called()
	return args.Error(0)
}
