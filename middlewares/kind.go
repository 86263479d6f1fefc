package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/temanskyM/scheduler-manager/forms"
	"github.com/temanskyM/scheduler-manager/models"
	"github.com/temanskyM/scheduler-manager/res"
)

const KIND_KEY = "kind"

// ValidKind resolves the :kind route param to a registered record kind.
func ValidKind() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var param forms.KindParam
		if err := ctx.ShouldBindUri(&param); err != nil {
			ctx.AbortWithStatusJSON(http.StatusNotFound, &res.Response{
				Success: false,
				Message: "Unknown record kind",
			})
			return
		}
		kind, _ := models.KindFromCollection(param.Kind)
		ctx.Set(KIND_KEY, kind)
		ctx.Next()
	}
}

func KindFromContext(ctx *gin.Context) *models.Kind {
	kind, _ := ctx.MustGet(KIND_KEY).(*models.Kind)
	return kind
}
