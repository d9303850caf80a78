package eventlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCleanupJob_Process(t *testing.T) {
	mockRepo := new(MockRepository)
	job := NewCleanupJob(NewService(mockRepo), 10)

	mockRepo.On("CleanupOldEvents", mock.Anything, 10).Return(int64(100), nil)

	err := job.Process(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "eventlog_cleanup", job.Name())
	mockRepo.AssertExpectations(t)
}

func TestCleanupJob_ProcessError(t *testing.T) {
	mockRepo := new(MockRepository)
	job := NewCleanupJob(NewService(mockRepo), 30)

	mockRepo.On("CleanupOldEvents", mock.Anything, 30).Return(int64(0), errors.New("db down"))

	err := job.Process(context.Background())
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
