package controllers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/temanskyM/scheduler-manager/forms"
	"github.com/temanskyM/scheduler-manager/res"
	"github.com/temanskyM/scheduler-manager/services"
	"github.com/temanskyM/scheduler-manager/smaps"
)

type ExportController struct {
	export *services.ExportService
}

// The file is built in memory first so a failure can still answer JSON.
func (e *ExportController) attachment(
	c *gin.Context,
	filename,
	contentType string,
	write func(ctx context.Context, w io.Writer) *res.ErrorRes,
) {
	var buf bytes.Buffer
	if err := write(c.Request.Context(), &buf); err != nil {
		c.AbortWithStatusJSON(err.StatusCode, &res.Response{
			Success: false,
			Message: err.Err.Error(),
		})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// Query
func (e *ExportController) ExportWorkbook(c *gin.Context) {
	e.attachment(c, "records.xlsx", services.XLSX_CONTENT_TYPE, e.export.WriteWorkbook)
}

func (e *ExportController) ExportPDF(c *gin.Context) {
	e.attachment(c, "records.pdf", services.PDF_CONTENT_TYPE, e.export.PDF)
}

func (e *ExportController) ExportArchive(c *gin.Context) {
	e.attachment(c, "records.zip", services.ZIP_CONTENT_TYPE, e.export.Archive)
}

// Feed
func (e *ExportController) Upload(c *gin.Context) {
	var form forms.ExportForm
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBind(&form); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
				Success: false,
				Message: err.Error(),
			})
			return
		}
	}
	location, err := e.export.Upload(c.Request.Context(), form.Key)
	if err != nil {
		c.AbortWithStatusJSON(err.StatusCode, &res.Response{
			Success: false,
			Message: err.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, &res.Response{
		Success: true,
		Data:    smaps.UploadMap{Location: location},
	})
}

func NewExportController(export *services.ExportService) *ExportController {
	return &ExportController{export: export}
}
