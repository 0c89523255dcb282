package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"schememonitor/internal/model"
	"schememonitor/internal/util"
)

type SchemeController struct {
	*baseController
}

type schemeUpdateRequest struct {
	SrNo                     *int     `json:"sr_no"`
	NameOfScheme             *string  `json:"name_of_scheme"`
	PhysicalProgress         *float64 `json:"physical_progress"`
	TotalAllocation          *float64 `json:"total_allocation"`
	FundsReleased            *float64 `json:"funds_released"`
	CommittedFundUtilization *float64 `json:"committed_fund_utilization"`
	LabourDeployed           *int     `json:"labour_deployed"`
	Remarks                  *string  `json:"remarks"`
}

// fields maps only the provided values to their columns so that an update
// never touches omitted fields.
func (r schemeUpdateRequest) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.SrNo != nil {
		fields["sr_no"] = *r.SrNo
	}
	if r.NameOfScheme != nil {
		fields["name_of_scheme"] = *r.NameOfScheme
	}
	if r.PhysicalProgress != nil {
		fields["physical_progress"] = *r.PhysicalProgress
	}
	if r.TotalAllocation != nil {
		fields["total_allocation"] = *r.TotalAllocation
	}
	if r.FundsReleased != nil {
		fields["funds_released"] = *r.FundsReleased
	}
	if r.CommittedFundUtilization != nil {
		fields["committed_fund_utilization"] = *r.CommittedFundUtilization
	}
	if r.LabourDeployed != nil {
		fields["labour_deployed"] = *r.LabourDeployed
	}
	if r.Remarks != nil {
		fields["remarks"] = *r.Remarks
	}
	return fields
}

func (sc SchemeController) List(ctx *gin.Context) {
	name := ctx.Query("name")

	var gsNo *int
	if raw := ctx.Query("gs_no"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "gs_no must be an integer"})
			return
		}
		gsNo = &parsed
	}

	schemes, err := sc.app.Repository.Scheme.List(ctx, nil, name, gsNo)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error fetching schemes: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, schemes)
}

func (sc SchemeController) Get(ctx *gin.Context) {
	gsNo, err := strconv.Atoi(ctx.Param("gs_no"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "gs_no must be an integer"})
		return
	}

	scheme, err := sc.app.Repository.Scheme.GetByGsNo(ctx, nil, gsNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Scheme with gs_no %d not found", gsNo)})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error fetching scheme: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, scheme)
}

func (sc SchemeController) Create(ctx *gin.Context) {
	var scheme model.Scheme
	if err := ctx.ShouldBindJSON(&scheme); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": util.ValidationErrorMessage(err)})
		return
	}

	if _, err := sc.app.Repository.Scheme.Create(ctx, nil, &scheme); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error creating scheme: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Scheme created successfully", "gs_no": scheme.GsNo})
}

func (sc SchemeController) Update(ctx *gin.Context) {
	gsNo, err := strconv.Atoi(ctx.Param("gs_no"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "gs_no must be an integer"})
		return
	}

	var req schemeUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": util.ValidationErrorMessage(err)})
		return
	}

	fields := req.fields()
	if len(fields) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	if err := sc.app.Repository.Scheme.Update(ctx, nil, gsNo, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Scheme with gs_no %d not found", gsNo)})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error updating scheme: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Scheme updated successfully", "gs_no": gsNo})
}

// Delete removes the scheme, its components, their image rows and the stored
// blobs. Blob removal is best-effort; a missing object never fails the
// delete.
func (sc SchemeController) Delete(ctx *gin.Context) {
	gsNo, err := strconv.Atoi(ctx.Param("gs_no"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "gs_no must be an integer"})
		return
	}

	if _, err := sc.app.Repository.Scheme.GetByGsNo(ctx, nil, gsNo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Scheme with gs_no %d not found", gsNo)})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error fetching scheme: %v", err)})
		return
	}

	images, err := sc.app.Repository.Component.DeleteByScheme(ctx, nil, gsNo)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error deleting scheme: %v", err)})
		return
	}

	if err := sc.app.Repository.Scheme.Delete(ctx, nil, gsNo); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error deleting scheme: %v", err)})
		return
	}

	sc.removeBlobs(ctx, images)

	ctx.JSON(http.StatusOK, gin.H{"message": "Scheme and all associated data deleted successfully", "gs_no": gsNo})
}

func (bc *baseController) removeBlobs(ctx *gin.Context, images []model.ComponentImage) {
	for _, img := range images {
		if err := util.RemoveImageFromS3(ctx, bc.app.S3, img.ImageType, img.ImagePath); err != nil {
			bc.app.Logger.Warnf("Error deleting image file %s/%s: %v", img.ImageType, img.ImagePath, err)
		}
	}
}
