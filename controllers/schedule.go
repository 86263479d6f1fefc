package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/temanskyM/scheduler-manager/res"
	"github.com/temanskyM/scheduler-manager/services"
)

type ScheduleController struct {
	scheduler *services.SchedulerService
}

func (s *ScheduleController) WriteSchedule(c *gin.Context) {
	if err := s.scheduler.WriteSchedule(c.Request.Context()); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrScheduleNotImplemented) {
			status = http.StatusNotImplemented
		}
		c.AbortWithStatusJSON(status, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
	})
}

func NewScheduleController(scheduler *services.SchedulerService) *ScheduleController {
	return &ScheduleController{scheduler: scheduler}
}
