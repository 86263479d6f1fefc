package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteScheduleNotImplemented(t *testing.T) {
	err := NewSchedulerService().WriteSchedule(context.Background())
	assert.ErrorIs(t, err, ErrScheduleNotImplemented)
}
