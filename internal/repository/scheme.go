package repository

import (
	"context"

	"gorm.io/gorm"

	"schememonitor/internal/constant"
	"schememonitor/internal/model"
)

type SchemeRepository struct {
	*baseRepository
}

// List returns schemes ordered by gs_no. name filters by substring match on
// name_of_scheme, gsNo by exact match. Both are optional.
func (sr SchemeRepository) List(ctx context.Context, tx *gorm.DB, name string, gsNo *int) ([]model.Scheme, error) {
	sr.logger.Debugf("List schemes with name: %q, gsNo: %v \n", name, gsNo)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Scheme{})
	if name != "" {
		query = query.Where("name_of_scheme LIKE ?", "%"+name+"%")
	}
	if gsNo != nil {
		query = query.Where("gs_no = ?", *gsNo)
	}

	var schemes []model.Scheme
	if err := query.Order("gs_no").Find(&schemes).Error; err != nil {
		return nil, err
	}

	return schemes, nil
}

func (sr SchemeRepository) GetByGsNo(ctx context.Context, tx *gorm.DB, gsNo int) (*model.Scheme, error) {
	sr.logger.Debugf("Get scheme with gsNo: %d \n", gsNo)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var scheme model.Scheme
	if err := db.WithContext(ctx).Model(&model.Scheme{}).Where("gs_no = ?", gsNo).First(&scheme).Error; err != nil {
		return nil, err
	}

	return &scheme, nil
}

func (sr SchemeRepository) Create(ctx context.Context, tx *gorm.DB, scheme *model.Scheme) (*model.Scheme, error) {
	sr.logger.Debugf("Create scheme with data: %v \n", scheme)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Scheme{}).Create(scheme).Error; err != nil {
		return scheme, err
	}

	return scheme, nil
}

// Update writes only the given columns. Callers build the map from the
// fields actually present in the request so omitted fields stay untouched.
func (sr SchemeRepository) Update(ctx context.Context, tx *gorm.DB, gsNo int, fields map[string]interface{}) error {
	sr.logger.Debugf("Update scheme gsNo: %d with fields: %v \n", gsNo, fields)

	if len(fields) == 0 {
		return nil
	}

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	fields["updated_at"] = gorm.Expr("CURRENT_TIMESTAMP")

	result := db.WithContext(ctx).Model(&model.Scheme{}).Where("gs_no = ?", gsNo).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (sr SchemeRepository) Delete(ctx context.Context, tx *gorm.DB, gsNo int) error {
	sr.logger.Debugf("Delete scheme with gsNo: %d \n", gsNo)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("gs_no = ?", gsNo).Delete(&model.Scheme{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
