package route

import (
	"github.com/gin-gonic/gin"

	"schememonitor/internal/controller"
)

func Uploads(r *gin.RouterGroup, uc *controller.UploadController) {
	upload := r.Group("/upload")
	{
		upload.POST("/before", uc.Before)
		upload.POST("/after", uc.After)
	}
}
