package model

type ComponentImage struct {
	ID        int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CompID    int    `gorm:"column:comp_id;index;not null" json:"comp_id"`
	ImagePath string `gorm:"column:image_path;type:text;not null" json:"image_path"`
	// "before" or "after", matching the storage bucket the blob lives in.
	ImageType string `gorm:"column:image_type;type:varchar(10);not null" json:"image_type"`
}

func (ci ComponentImage) TableName() string {
	return "component_images"
}
