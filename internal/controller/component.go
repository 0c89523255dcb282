package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"schememonitor/internal/constant"
	"schememonitor/internal/model"
	"schememonitor/internal/util"
)

type ComponentController struct {
	*baseController
}

type componentUpdateRequest struct {
	ComponentName *string  `json:"component_name"`
	StartingDate  *string  `json:"starting_date"`
	GsNo          *int     `json:"gs_no"`
	IsActive      *bool    `json:"is_active"`
	BeforeImages  []string `json:"before_images"`
	AfterImages   []string `json:"after_images"`
}

func (r componentUpdateRequest) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.ComponentName != nil {
		fields["component_name"] = *r.ComponentName
	}
	if r.StartingDate != nil {
		fields["starting_date"] = *r.StartingDate
	}
	if r.GsNo != nil {
		fields["gs_no"] = *r.GsNo
	}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}
	return fields
}

func (cc ComponentController) List(ctx *gin.Context) {
	var gsNo *int
	if raw := ctx.Query("gs_no"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "gs_no must be an integer"})
			return
		}
		gsNo = &parsed
	}

	components, err := cc.app.Repository.Component.ListByScheme(ctx, nil, gsNo)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error fetching components: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, components)
}

func (cc ComponentController) Get(ctx *gin.Context) {
	compID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "comp_id must be an integer"})
		return
	}

	component, err := cc.app.Repository.Component.GetByID(ctx, nil, compID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Component with comp_id %d not found", compID)})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error fetching component: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, component)
}

// Create inserts the component with any pre-uploaded image filenames
// attached at creation time.
func (cc ComponentController) Create(ctx *gin.Context) {
	var component model.Component
	if err := ctx.ShouldBindJSON(&component); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": util.ValidationErrorMessage(err)})
		return
	}

	if _, err := cc.app.Repository.Scheme.GetByGsNo(ctx, nil, component.GsNo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Scheme with gs_no %d not found", component.GsNo)})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error fetching scheme: %v", err)})
		return
	}

	if _, err := cc.app.Repository.Component.Create(ctx, nil, &component); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error creating component: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Component created successfully", "comp_id": component.CompID})
}

// Update writes provided fields and, when an image list is present, replaces
// that list wholesale and drops the de-referenced blobs from storage.
func (cc ComponentController) Update(ctx *gin.Context) {
	compID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "comp_id must be an integer"})
		return
	}

	var req componentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": util.ValidationErrorMessage(err)})
		return
	}

	if req.GsNo != nil {
		if _, err := cc.app.Repository.Scheme.GetByGsNo(ctx, nil, *req.GsNo); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Scheme with gs_no %d not found", *req.GsNo)})
				return
			}
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error fetching scheme: %v", err)})
			return
		}
	}

	removed, err := cc.app.Repository.Component.Update(ctx, nil, compID, req.fields(), req.BeforeImages, req.AfterImages)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Component with comp_id %d not found", compID)})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error updating component: %v", err)})
		return
	}

	cc.removeBlobs(ctx, removed)

	ctx.JSON(http.StatusOK, gin.H{"message": "Component updated successfully", "comp_id": compID})
}

func (cc ComponentController) Delete(ctx *gin.Context) {
	compID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "comp_id must be an integer"})
		return
	}

	images, err := cc.app.Repository.Component.Delete(ctx, nil, compID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Component with comp_id %d not found", compID)})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error deleting component: %v", err)})
		return
	}

	cc.removeBlobs(ctx, images)

	ctx.JSON(http.StatusOK, gin.H{"message": "Component and its images deleted successfully", "comp_id": compID})
}

// Images returns the bucket-prefixed retrieval URLs of every image attached
// to the component.
func (cc ComponentController) Images(ctx *gin.Context) {
	compID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "comp_id must be an integer"})
		return
	}

	images, err := cc.app.Repository.Component.ListImages(ctx, nil, compID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error fetching component images: %v", err)})
		return
	}

	beforeUrls := []string{}
	afterUrls := []string{}
	for _, img := range images {
		url := fmt.Sprintf("/uploads/%s/%s", img.ImageType, img.ImagePath)
		if img.ImageType == constant.BUCKET_BEFORE {
			beforeUrls = append(beforeUrls, url)
		} else {
			afterUrls = append(afterUrls, url)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"comp_id":           compID,
		"before_image_urls": beforeUrls,
		"after_image_urls":  afterUrls,
	})
}
