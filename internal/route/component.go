package route

import (
	"github.com/gin-gonic/gin"

	"schememonitor/internal/controller"
)

func Components(r *gin.RouterGroup, cc *controller.ComponentController) {
	component := r.Group("/component")
	{
		component.GET("", cc.List)
		component.GET("/:id", cc.Get)
		component.GET("/:id/images", cc.Images)
		component.POST("", cc.Create)
		component.PUT("/:id", cc.Update)
		component.DELETE("/:id", cc.Delete)
	}
}
