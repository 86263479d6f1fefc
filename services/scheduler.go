package services

import (
	"context"
	"errors"
)

var ErrScheduleNotImplemented = errors.New("timetable generation is not implemented")

// SchedulerService is the entry point for timetable generation. Building
// a timetable from teacher availability, subject load and room capacity
// is not implemented.
type SchedulerService struct{}

func (s *SchedulerService) WriteSchedule(ctx context.Context) error {
	return ErrScheduleNotImplemented
}

func NewSchedulerService() *SchedulerService {
	return &SchedulerService{}
}
