package report_case

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Der manuelle Digest bestätigt nur die Einreihung; gerechnet wird im Worker.
func TestEnqueueAlertDigest_Success(t *testing.T) {
	ctx := context.Background()

	taskQueue := new(MockTaskQueue)
	service := &ReportService{taskQueue: taskQueue}

	taskQueue.On("EnqueueSendAlertDigest").Return(nil)

	resp, err := service.EnqueueAlertDigest(ctx)

	assert.Nil(t, err)
	assert.True(t, resp.Enqueued)

	taskQueue.AssertExpectations(t)
}

func TestEnqueueAlertDigest_QueueDown(t *testing.T) {
	ctx := context.Background()

	taskQueue := new(MockTaskQueue)
	service := &ReportService{taskQueue: taskQueue}

	taskQueue.On("EnqueueSendAlertDigest").Return(errors.New("redis: connection refused"))

	resp, err := service.EnqueueAlertDigest(ctx)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, "internal_error", err.MessageKey)
}
