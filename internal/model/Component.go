package model

import "time"

type Component struct {
	CompID        int        `gorm:"column:comp_id;primaryKey;autoIncrement" json:"comp_id"`
	ComponentName string     `gorm:"column:component_name;type:text;not null" json:"component_name" form:"component_name" binding:"required,strNotEmpty"`
	StartingDate  string     `gorm:"column:starting_date;type:varchar(30)" json:"starting_date" form:"starting_date"`
	GsNo          int        `gorm:"column:gs_no;index;not null" json:"gs_no" form:"gs_no" binding:"required"`
	IsActive      *bool      `gorm:"column:is_active;default:true" json:"is_active" form:"is_active"`
	CreatedAt     *time.Time `gorm:"column:created_at;type:timestamptz;default:CURRENT_TIMESTAMP" json:"created_at"`

	// Image filename lists are stored as rows in component_images and
	// attached by the repository when reading.
	BeforeImages []string `gorm:"-" json:"before_images"`
	AfterImages  []string `gorm:"-" json:"after_images"`
}

func (c Component) TableName() string {
	return "component"
}
