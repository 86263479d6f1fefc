package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/temanskyM/scheduler-manager/forms"
	"github.com/temanskyM/scheduler-manager/models"
	"github.com/temanskyM/scheduler-manager/res"
	"github.com/temanskyM/scheduler-manager/services"
)

type EntryController struct {
	entry *services.EntryService
}

// Feed
// Add accepts a urlencoded, multipart or JSON body holding the form fields
// of kind.
func (e *EntryController) Add(kind *models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		source, err := forms.SourceFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
				Success: false,
				Message: err.Error(),
			})
			return
		}
		outcome := e.entry.Add(c.Request.Context(), kind, source)
		if !outcome.Success {
			c.AbortWithStatusJSON(outcome.StatusCode, outcome.Response())
			return
		}
		c.JSON(outcome.StatusCode, outcome.Response())
	}
}

func NewEntryController(entry *services.EntryService) *EntryController {
	return &EntryController{entry: entry}
}
