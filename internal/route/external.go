package route

import (
	"github.com/gin-gonic/gin"

	"schememonitor/internal/controller"
)

func External(r *gin.RouterGroup, ec *controller.ExternalController) {
	r.GET("/get_project", ec.GetProject)
	r.GET("/get_project_structure/:id", ec.GetProjectStructure)
	r.GET("/get_project_details/:id", ec.GetProjectDetails)
}
