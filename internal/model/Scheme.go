package model

import "time"

type Scheme struct {
	GsNo                     int        `gorm:"column:gs_no;primaryKey" json:"gs_no" form:"gs_no" binding:"required"`
	SrNo                     *int       `gorm:"column:sr_no" json:"sr_no" form:"sr_no"`
	NameOfScheme             string     `gorm:"column:name_of_scheme;type:text;not null" json:"name_of_scheme" form:"name_of_scheme" binding:"required,strNotEmpty"`
	PhysicalProgress         float64    `gorm:"column:physical_progress;default:0" json:"physical_progress" form:"physical_progress"`
	TotalAllocation          float64    `gorm:"column:total_allocation;default:0" json:"total_allocation" form:"total_allocation"`
	FundsReleased            float64    `gorm:"column:funds_released;default:0" json:"funds_released" form:"funds_released"`
	CommittedFundUtilization float64    `gorm:"column:committed_fund_utilization;default:0" json:"committed_fund_utilization" form:"committed_fund_utilization"`
	LabourDeployed           int        `gorm:"column:labour_deployed;default:0" json:"labour_deployed" form:"labour_deployed"`
	Remarks                  string     `gorm:"column:remarks;type:text" json:"remarks" form:"remarks"`
	CreatedAt                *time.Time `gorm:"column:created_at;type:timestamptz;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt                *time.Time `gorm:"column:updated_at;type:timestamptz;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (s Scheme) TableName() string {
	return "scheme"
}
