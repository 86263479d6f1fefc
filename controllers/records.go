package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/temanskyM/scheduler-manager/forms"
	"github.com/temanskyM/scheduler-manager/middlewares"
	"github.com/temanskyM/scheduler-manager/res"
	"github.com/temanskyM/scheduler-manager/services"
	"github.com/temanskyM/scheduler-manager/smaps"
)

type RecordsController struct {
	records *services.RecordsService
}

// Query
func (r *RecordsController) GetRecords(c *gin.Context) {
	kind := middlewares.KindFromContext(c)
	var query forms.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	records, err := r.records.GetRecords(c.Request.Context(), kind, query)
	if err != nil {
		c.AbortWithStatusJSON(err.StatusCode, &res.Response{
			Success: false,
			Message: err.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
		Data: smaps.RecordsMap{
			Records: records,
			Skip:    query.Skip,
			Limit:   query.Limit,
		},
	})
}

func (r *RecordsController) GetRecord(c *gin.Context) {
	kind := middlewares.KindFromContext(c)
	var param forms.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	record, err := r.records.GetRecord(c.Request.Context(), kind, param.ID)
	if err != nil {
		c.AbortWithStatusJSON(err.StatusCode, &res.Response{
			Success: false,
			Message: err.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
		Data:    smaps.RecordMap{Record: record},
	})
}

// Feed
func (r *RecordsController) DeleteRecord(c *gin.Context) {
	kind := middlewares.KindFromContext(c)
	var param forms.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	if err := r.records.DeleteRecord(c.Request.Context(), kind, param.ID); err != nil {
		c.AbortWithStatusJSON(err.StatusCode, &res.Response{
			Success: false,
			Message: err.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
	})
}

func NewRecordsController(records *services.RecordsService) *RecordsController {
	return &RecordsController{records: records}
}
