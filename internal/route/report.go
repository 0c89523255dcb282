package route

import (
	"github.com/gin-gonic/gin"

	"schememonitor/internal/controller"
)

func Reports(r *gin.RouterGroup, rc *controller.ReportController) {
	reports := r.Group("/reports")
	{
		reports.GET("", rc.List)
		reports.GET("/:id", rc.Get)
		reports.GET("/all/pdf", rc.AllPDF)
	}
}
