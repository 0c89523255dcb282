package repository

import (
	"context"

	"gorm.io/gorm"

	"schememonitor/internal/constant"
	"schememonitor/internal/model"
)

type ComponentRepository struct {
	*baseRepository
}

// attachImages fills BeforeImages/AfterImages for every component from the
// component_images rows, preserving insertion order.
func (cr ComponentRepository) attachImages(ctx context.Context, db *gorm.DB, components []model.Component) error {
	if len(components) == 0 {
		return nil
	}

	compIDs := make([]int, 0, len(components))
	for i := range components {
		components[i].BeforeImages = []string{}
		components[i].AfterImages = []string{}
		compIDs = append(compIDs, components[i].CompID)
	}

	var images []model.ComponentImage
	if err := db.WithContext(ctx).Model(&model.ComponentImage{}).
		Where("comp_id IN ?", compIDs).
		Order("id").
		Find(&images).Error; err != nil {
		return err
	}

	byComp := make(map[int]*model.Component, len(components))
	for i := range components {
		byComp[components[i].CompID] = &components[i]
	}

	for _, img := range images {
		comp, ok := byComp[img.CompID]
		if !ok {
			continue
		}
		switch img.ImageType {
		case constant.BUCKET_BEFORE:
			comp.BeforeImages = append(comp.BeforeImages, img.ImagePath)
		case constant.BUCKET_AFTER:
			comp.AfterImages = append(comp.AfterImages, img.ImagePath)
		}
	}

	return nil
}

// ListByScheme returns components ordered by comp_id, each with its image
// lists attached. gsNo is optional.
func (cr ComponentRepository) ListByScheme(ctx context.Context, tx *gorm.DB, gsNo *int) ([]model.Component, error) {
	cr.logger.Debugf("List components with gsNo: %v \n", gsNo)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Component{})
	if gsNo != nil {
		query = query.Where("gs_no = ?", *gsNo)
	}

	var components []model.Component
	if err := query.Order("comp_id").Find(&components).Error; err != nil {
		return nil, err
	}

	if err := cr.attachImages(ctx, db, components); err != nil {
		return nil, err
	}

	return components, nil
}

func (cr ComponentRepository) GetByID(ctx context.Context, tx *gorm.DB, compID int) (*model.Component, error) {
	cr.logger.Debugf("Get component with compID: %d \n", compID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var component model.Component
	if err := db.WithContext(ctx).Model(&model.Component{}).Where("comp_id = ?", compID).First(&component).Error; err != nil {
		return nil, err
	}

	components := []model.Component{component}
	if err := cr.attachImages(ctx, db, components); err != nil {
		return nil, err
	}

	return &components[0], nil
}

func (cr ComponentRepository) ListImages(ctx context.Context, tx *gorm.DB, compID int) ([]model.ComponentImage, error) {
	cr.logger.Debugf("List images of component with compID: %d \n", compID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var images []model.ComponentImage
	if err := db.WithContext(ctx).Model(&model.ComponentImage{}).
		Where("comp_id = ?", compID).
		Order("id").
		Find(&images).Error; err != nil {
		return nil, err
	}

	return images, nil
}

// Create inserts the component together with rows for every filename in its
// BeforeImages/AfterImages lists.
func (cr ComponentRepository) Create(ctx context.Context, tx *gorm.DB, component *model.Component) (*model.Component, error) {
	cr.logger.Debugf("Create component with data: %v \n", component)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	err := cr.withTx(db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Model(&model.Component{}).Create(component).Error; err != nil {
			return err
		}

		return createImageRows(tx, component.CompID, component.BeforeImages, component.AfterImages)
	})
	if err != nil {
		return component, err
	}

	return component, nil
}

// Update writes the given columns and, when beforeImages/afterImages are
// non-nil, replaces that image list wholesale. Filenames de-referenced by a
// replacement are returned so the caller can drop the stored blobs.
func (cr ComponentRepository) Update(ctx context.Context, tx *gorm.DB, compID int, fields map[string]interface{}, beforeImages, afterImages []string) ([]model.ComponentImage, error) {
	cr.logger.Debugf("Update component compID: %d with fields: %v \n", compID, fields)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var removed []model.ComponentImage
	err := cr.withTx(db.WithContext(ctx), func(tx *gorm.DB) error {
		var component model.Component
		if err := tx.Model(&model.Component{}).Where("comp_id = ?", compID).First(&component).Error; err != nil {
			return err
		}

		if len(fields) > 0 {
			if err := tx.Model(&model.Component{}).Where("comp_id = ?", compID).Updates(fields).Error; err != nil {
				return err
			}
		}

		for imageType, paths := range map[string][]string{
			constant.BUCKET_BEFORE: beforeImages,
			constant.BUCKET_AFTER:  afterImages,
		} {
			if paths == nil {
				continue
			}

			dropped, err := replaceImageRows(tx, compID, imageType, paths)
			if err != nil {
				return err
			}
			removed = append(removed, dropped...)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}

// Delete removes the component and its image rows, returning the rows so the
// caller can drop the stored blobs.
func (cr ComponentRepository) Delete(ctx context.Context, tx *gorm.DB, compID int) ([]model.ComponentImage, error) {
	cr.logger.Debugf("Delete component with compID: %d \n", compID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var images []model.ComponentImage
	err := cr.withTx(db.WithContext(ctx), func(tx *gorm.DB) error {
		var component model.Component
		if err := tx.Model(&model.Component{}).Where("comp_id = ?", compID).First(&component).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.ComponentImage{}).Where("comp_id = ?", compID).Find(&images).Error; err != nil {
			return err
		}

		if err := tx.Where("comp_id = ?", compID).Delete(&model.ComponentImage{}).Error; err != nil {
			return err
		}

		return tx.Where("comp_id = ?", compID).Delete(&model.Component{}).Error
	})
	if err != nil {
		return nil, err
	}

	return images, nil
}

// DeleteByScheme removes every component of the scheme and their image rows,
// returning the rows so the caller can drop the stored blobs. Used by the
// scheme delete cascade.
func (cr ComponentRepository) DeleteByScheme(ctx context.Context, tx *gorm.DB, gsNo int) ([]model.ComponentImage, error) {
	cr.logger.Debugf("Delete components of scheme with gsNo: %d \n", gsNo)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var images []model.ComponentImage
	err := cr.withTx(db.WithContext(ctx), func(tx *gorm.DB) error {
		var compIDs []int
		if err := tx.Model(&model.Component{}).Where("gs_no = ?", gsNo).Pluck("comp_id", &compIDs).Error; err != nil {
			return err
		}
		if len(compIDs) == 0 {
			return nil
		}

		if err := tx.Model(&model.ComponentImage{}).Where("comp_id IN ?", compIDs).Find(&images).Error; err != nil {
			return err
		}

		if err := tx.Where("comp_id IN ?", compIDs).Delete(&model.ComponentImage{}).Error; err != nil {
			return err
		}

		return tx.Where("gs_no = ?", gsNo).Delete(&model.Component{}).Error
	})
	if err != nil {
		return nil, err
	}

	return images, nil
}

func createImageRows(tx *gorm.DB, compID int, beforeImages, afterImages []string) error {
	var rows []model.ComponentImage
	for _, path := range beforeImages {
		rows = append(rows, model.ComponentImage{CompID: compID, ImagePath: path, ImageType: constant.BUCKET_BEFORE})
	}
	for _, path := range afterImages {
		rows = append(rows, model.ComponentImage{CompID: compID, ImagePath: path, ImageType: constant.BUCKET_AFTER})
	}

	if len(rows) == 0 {
		return nil
	}

	return tx.Model(&model.ComponentImage{}).Create(&rows).Error
}

func replaceImageRows(tx *gorm.DB, compID int, imageType string, paths []string) ([]model.ComponentImage, error) {
	var existing []model.ComponentImage
	if err := tx.Model(&model.ComponentImage{}).
		Where("comp_id = ? AND image_type = ?", compID, imageType).
		Find(&existing).Error; err != nil {
		return nil, err
	}

	if err := tx.Where("comp_id = ? AND image_type = ?", compID, imageType).Delete(&model.ComponentImage{}).Error; err != nil {
		return nil, err
	}

	var rows []model.ComponentImage
	for _, path := range paths {
		rows = append(rows, model.ComponentImage{CompID: compID, ImagePath: path, ImageType: imageType})
	}
	if len(rows) > 0 {
		if err := tx.Model(&model.ComponentImage{}).Create(&rows).Error; err != nil {
			return nil, err
		}
	}

	kept := make(map[string]bool, len(paths))
	for _, path := range paths {
		kept[path] = true
	}

	var dropped []model.ComponentImage
	for _, img := range existing {
		if !kept[img.ImagePath] {
			dropped = append(dropped, img)
		}
	}

	return dropped, nil
}
