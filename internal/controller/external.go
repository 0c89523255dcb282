package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ExternalController struct {
	*baseController
}

// GetProject looks a scheme up by GS number on the provincial financial
// dashboard and passes the upstream body through untouched.
func (ec ExternalController) GetProject(ctx *gin.Context) {
	gsNo := ctx.Query("gsNo")
	filterID := ctx.DefaultQuery("filterID", "1")

	body, status, err := ec.app.SMDP.SearchProject(ctx, gsNo, filterID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if status != http.StatusOK {
		ctx.JSON(status, gin.H{"error": "Failed to fetch data", "status": status})
		return
	}

	ctx.Data(http.StatusOK, "application/json", body)
}

func (ec ExternalController) GetProjectStructure(ctx *gin.Context) {
	body, status, err := ec.app.Tourism.ProjectStructure(ctx, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if status != http.StatusOK {
		ctx.JSON(status, gin.H{"error": "Failed to fetch structure", "status": status})
		return
	}

	ctx.Data(http.StatusOK, "application/json", body)
}

func (ec ExternalController) GetProjectDetails(ctx *gin.Context) {
	body, status, err := ec.app.Tourism.ProjectDetails(ctx, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if status != http.StatusOK {
		ctx.JSON(status, gin.H{"error": "Failed to fetch project details", "status": status})
		return
	}

	ctx.Data(http.StatusOK, "application/json", body)
}
