package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/temanskyM/scheduler-manager/forms"
	"github.com/temanskyM/scheduler-manager/res"
	"github.com/temanskyM/scheduler-manager/services"
	"github.com/temanskyM/scheduler-manager/smaps"
)

type SearchController struct {
	search *services.SearchService
}

func (s *SearchController) Search(c *gin.Context) {
	var query forms.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	hits, err := s.search.Search(c.Request.Context(), query)
	if err != nil {
		c.AbortWithStatusJSON(err.StatusCode, &res.Response{
			Success: false,
			Message: err.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, &res.Response{
		Success: true,
		Data:    smaps.SearchHitsMap{Hits: hits},
	})
}

func NewSearchController(search *services.SearchService) *SearchController {
	return &SearchController{search: search}
}
