package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"schememonitor/internal/report"
)

type ReportController struct {
	*baseController
	generator *report.Generator
}

// List proxies the field-report list from the tourism service untouched.
func (rc ReportController) List(ctx *gin.Context) {
	body, status, err := rc.app.Tourism.Reports(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if status != http.StatusOK {
		ctx.JSON(status, gin.H{"error": "Failed to fetch reports", "status": status})
		return
	}

	ctx.Data(http.StatusOK, "application/json", body)
}

func (rc ReportController) Get(ctx *gin.Context) {
	body, status, err := rc.app.Tourism.ReportDetails(ctx, ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if status != http.StatusOK {
		ctx.JSON(status, gin.H{"error": "Failed to fetch report details", "status": status})
		return
	}

	ctx.Data(http.StatusOK, "application/json", body)
}

// AllPDF renders the aggregate scheme report and returns it as a download.
func (rc ReportController) AllPDF(ctx *gin.Context) {
	pdf, err := rc.generator.Generate(ctx)
	if err != nil {
		rc.app.Logger.Errorf("PDF generation error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error generating PDF report: %v", err)})
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", report.Filename()))
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}
