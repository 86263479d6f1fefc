package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/temanskyM/scheduler-manager/res"
	"github.com/temanskyM/scheduler-manager/services"
	"github.com/temanskyM/scheduler-manager/smaps"
)

// GetKinds lists the record kinds and the form field ids each one reads.
func GetKinds(c *gin.Context) {
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
		Data:    smaps.KindsMap{Kinds: services.SummarizeKinds()},
	})
}
