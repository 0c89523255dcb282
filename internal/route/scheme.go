package route

import (
	"github.com/gin-gonic/gin"

	"schememonitor/internal/controller"
)

func Schemes(r *gin.RouterGroup, sc *controller.SchemeController) {
	scheme := r.Group("/scheme")
	{
		scheme.GET("", sc.List)
		scheme.GET("/:gs_no", sc.Get)
		scheme.POST("", sc.Create)
		scheme.PUT("/:gs_no", sc.Update)
		scheme.DELETE("/:gs_no", sc.Delete)
	}
}
